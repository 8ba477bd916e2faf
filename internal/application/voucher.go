package application

import (
	"context"
	"fmt"
	"log/slog"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.VoucherUseCase = (*VoucherService)(nil)

type detailsInvalidator interface {
	Invalidate(ctx context.Context, participantID, eventID int) error
}

type VoucherService struct {
	vouchers   output.VoucherGateway
	ledger     output.VoucherLedger
	details    detailsInvalidator
	translator output.T
}

func NewVoucherService(
	vouchers output.VoucherGateway,
	ledger output.VoucherLedger,
	details detailsInvalidator,
	translator output.T,
) *VoucherService {
	return &VoucherService{
		vouchers:   vouchers,
		ledger:     ledger,
		details:    details,
		translator: translator,
	}
}

// VoucherDelta is the net number of vouchers to hand back to the participant
// after an edit. Positive means reassign, negative means redeem.
func VoucherDelta(currentAssigned, currentRedeemed, editAssigned, editRedeemed int) int {
	return (editAssigned - currentAssigned) - (editRedeemed - currentRedeemed)
}

// ResolveAllocationID returns known when the caller already holds the id and
// otherwise looks up the participant's first drink voucher allocation.
func (s *VoucherService) ResolveAllocationID(ctx context.Context, participantID, eventID int, known *int) (int, error) {
	if known != nil && *known > 0 {
		return *known, nil
	}
	allocations, err := s.vouchers.ListParticipantAllocations(ctx, participantID, eventID)
	if err != nil {
		return 0, fmt.Errorf("resolve allocation: %w", err)
	}
	for _, a := range allocations {
		if a.IsDrinkVoucher() {
			return a.ID, nil
		}
	}
	return 0, domain.ErrNoVoucherAllocation
}

func (s *VoucherService) Redeem(ctx context.Context, req input.RedeemRequest) (*input.VoucherOutcome, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	allocationID, err := s.ResolveAllocationID(ctx, req.ParticipantID, req.EventID, req.AllocationID)
	if err != nil {
		return nil, err
	}
	if err := s.vouchers.RedeemVoucher(ctx, allocationID, req.Quantity); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, req.ParticipantID, req.EventID, allocationID, domain.VoucherActionRedeem, req.Quantity)

	locale := domain.ScopeFromContext(ctx).Locale
	return &input.VoucherOutcome{
		Action:       domain.VoucherActionRedeem,
		Delta:        -req.Quantity,
		Quantity:     req.Quantity,
		AllocationID: allocationID,
		Notice:       successNotice(s.translator, locale, "notice.voucher.redeemed.description", map[string]any{"Quantity": req.Quantity}),
	}, nil
}

// Edit turns the edited (assigned, redeemed) pair into a single reassign or
// redeem call for the net delta. A zero delta touches nothing.
func (s *VoucherService) Edit(ctx context.Context, req input.EditVoucherRequest) (*input.VoucherOutcome, error) {
	locale := domain.ScopeFromContext(ctx).Locale
	delta := VoucherDelta(req.CurrentAssigned, req.CurrentRedeemed, req.EditAssigned, req.EditRedeemed)
	if delta == 0 {
		return &input.VoucherOutcome{
			Action: domain.VoucherActionNone,
			Notice: successNotice(s.translator, locale, "notice.voucher.unchanged.description", nil),
		}, nil
	}

	allocationID, err := s.ResolveAllocationID(ctx, req.ParticipantID, req.EventID, req.AllocationID)
	if err != nil {
		return nil, err
	}

	out := &input.VoucherOutcome{Delta: delta, AllocationID: allocationID}
	if delta > 0 {
		out.Action = domain.VoucherActionReassign
		out.Quantity = delta
		if err := s.vouchers.ReassignVoucher(ctx, allocationID, delta); err != nil {
			return nil, err
		}
		out.Notice = successNotice(s.translator, locale, "notice.voucher.reassigned.description", map[string]any{"Quantity": delta})
	} else {
		out.Action = domain.VoucherActionRedeem
		out.Quantity = -delta
		if err := s.vouchers.RedeemVoucher(ctx, allocationID, -delta); err != nil {
			return nil, err
		}
		out.Notice = successNotice(s.translator, locale, "notice.voucher.redeemed.description", map[string]any{"Quantity": -delta})
	}

	s.afterMutation(ctx, req.ParticipantID, req.EventID, allocationID, out.Action, out.Quantity)
	return out, nil
}

// History lists the local ledger rows of a participant. The ledger has no
// access control of its own, so the caller must first be allowed to read the
// participant's vouchers on the backend.
func (s *VoucherService) History(ctx context.Context, participantID, eventID int) ([]entities.VoucherMutation, error) {
	scope := domain.ScopeFromContext(ctx)
	if scope.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	if scope.TenantID == "" {
		return nil, domain.ErrMissingTenant
	}
	if _, err := s.vouchers.ListParticipantAllocations(ctx, participantID, eventID); err != nil {
		return nil, fmt.Errorf("authorize voucher history: %w", err)
	}
	return s.ledger.ListByParticipant(ctx, scope.TenantID, participantID, eventID)
}

// afterMutation records the ledger row and drops the cached panel. The
// backend already applied the change, so failures here are only logged.
func (s *VoucherService) afterMutation(ctx context.Context, participantID, eventID, allocationID int, action string, quantity int) {
	scope := domain.ScopeFromContext(ctx)
	m := &entities.VoucherMutation{
		TenantID:      scope.TenantID,
		ParticipantID: participantID,
		EventID:       eventID,
		AllocationID:  allocationID,
		Action:        action,
		Quantity:      quantity,
		Actor:         scope.Actor,
	}
	if err := s.ledger.Record(ctx, m); err != nil {
		slog.Error("voucher ledger write failed", "allocation_id", allocationID, "action", action, "error", err)
	}
	if err := s.details.Invalidate(ctx, participantID, eventID); err != nil {
		slog.Warn("details invalidation failed", "participant_id", participantID, "error", err)
	}
	slog.Info("voucher mutation applied",
		"participant_id", participantID, "allocation_id", allocationID, "action", action, "quantity", quantity, "request_id", scope.RequestID)
}

package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type ParticipantDetailsUseCase interface {
	Load(ctx context.Context, participantID, eventID int) (*entities.ParticipantDetails, error)
	Invalidate(ctx context.Context, participantID, eventID int) error
}

type RedeemRequest struct {
	ParticipantID int  `json:"participant_id"`
	EventID       int  `json:"event_id"`
	AllocationID  *int `json:"allocation_id,omitempty"`
	Quantity      int  `json:"quantity"`
}

// EditVoucherRequest carries the counters shown to the user before the edit
// and the values they typed.
type EditVoucherRequest struct {
	ParticipantID   int  `json:"participant_id"`
	EventID         int  `json:"event_id"`
	AllocationID    *int `json:"allocation_id,omitempty"`
	CurrentAssigned int  `json:"current_assigned"`
	CurrentRedeemed int  `json:"current_redeemed"`
	EditAssigned    int  `json:"edit_assigned"`
	EditRedeemed    int  `json:"edit_redeemed"`
}

// VoucherOutcome reports what a redeem or edit dispatched to the backend.
type VoucherOutcome struct {
	Action       string `json:"action"`
	Delta        int    `json:"delta"`
	Quantity     int    `json:"quantity"`
	AllocationID int    `json:"allocation_id,omitempty"`
	Notice       Notice `json:"notice"`
}

type VoucherUseCase interface {
	Redeem(ctx context.Context, req RedeemRequest) (*VoucherOutcome, error)
	Edit(ctx context.Context, req EditVoucherRequest) (*VoucherOutcome, error)
	History(ctx context.Context, participantID, eventID int) ([]entities.VoucherMutation, error)
}

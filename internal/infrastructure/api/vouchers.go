package api

import (
	"context"
	"encoding/json"
	"fmt"

	"eventdesk/internal/domain/entities"
)

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// ListParticipantAllocations returns the participant's drink voucher
// allocations for the event. Item allocations are dropped.
func (c *Client) ListParticipantAllocations(ctx context.Context, participantID, eventID int) ([]entities.VoucherAllocation, error) {
	var out []entities.VoucherAllocation
	if err := c.get(ctx, at("/allocations/participant/%d?event_id=%d", participantID, eventID), &out); err != nil {
		return nil, fmt.Errorf("list allocations for participant %d: %w", participantID, err)
	}
	return entities.DrinkVouchers(out), nil
}

func (c *Client) GetVoucherSummary(ctx context.Context, participantID int) (*entities.VoucherSummary, error) {
	var out entities.VoucherSummary
	if err := c.get(ctx, at("/participants/%d/qr", participantID), &out); err != nil {
		return nil, fmt.Errorf("get voucher summary for participant %d: %w", participantID, err)
	}
	return &out, nil
}

func (c *Client) RedeemVoucher(ctx context.Context, allocationID, quantity int) error {
	if err := c.post(ctx, at("/allocations/%d/redeem", allocationID), quantityRequest{Quantity: quantity}, nil); err != nil {
		return fmt.Errorf("redeem %d on allocation %d: %w", quantity, allocationID, err)
	}
	return nil
}

func (c *Client) ReassignVoucher(ctx context.Context, allocationID, quantity int) error {
	if err := c.post(ctx, at("/allocations/%d/reassign", allocationID), quantityRequest{Quantity: quantity}, nil); err != nil {
		return fmt.Errorf("reassign %d on allocation %d: %w", quantity, allocationID, err)
	}
	return nil
}

func (c *Client) CountPendingAllocations(ctx context.Context, tenantSlug string) (int, error) {
	var out []json.RawMessage
	if err := c.get(ctx, at("/allocations/pending/%s", escape(tenantSlug)), &out); err != nil {
		return 0, fmt.Errorf("list pending allocations: %w", err)
	}
	return len(out), nil
}

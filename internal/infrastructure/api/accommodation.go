package api

import (
	"context"
	"fmt"

	"eventdesk/internal/domain/entities"
)

func (c *Client) ListEventAllocations(ctx context.Context, eventID int) ([]entities.AccommodationAllocation, error) {
	var out []entities.AccommodationAllocation
	if err := c.get(ctx, at("/accommodation/allocations?event_id=%d", eventID), &out); err != nil {
		return nil, fmt.Errorf("list allocations for event %d: %w", eventID, err)
	}
	return out, nil
}

func (c *Client) CheckInAllocation(ctx context.Context, allocationID int) error {
	if err := c.patch(ctx, at("/accommodation/allocations/%d/check-in", allocationID), nil, nil); err != nil {
		return fmt.Errorf("check in allocation %d: %w", allocationID, err)
	}
	return nil
}

func (c *Client) DeleteAllocation(ctx context.Context, allocationID int) error {
	if err := c.delete(ctx, at("/accommodation/allocations/%d", allocationID)); err != nil {
		return fmt.Errorf("delete allocation %d: %w", allocationID, err)
	}
	return nil
}

func (c *Client) ListVendorAccommodations(ctx context.Context) ([]entities.VendorAccommodation, error) {
	var out []entities.VendorAccommodation
	if err := c.get(ctx, at("/accommodation/vendor-accommodations"), &out); err != nil {
		return nil, fmt.Errorf("list vendor accommodations: %w", err)
	}
	return out, nil
}

func (c *Client) CreateVendorAccommodation(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	var out entities.VendorAccommodation
	if err := c.post(ctx, at("/accommodation/vendor-accommodations"), v, &out); err != nil {
		return nil, fmt.Errorf("create vendor accommodation: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateVendorAccommodation(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	var out entities.VendorAccommodation
	if err := c.put(ctx, at("/accommodation/vendor-accommodations/%d", id), v, &out); err != nil {
		return nil, fmt.Errorf("update vendor accommodation %d: %w", id, err)
	}
	return &out, nil
}

func (c *Client) DeleteVendorAccommodation(ctx context.Context, id int) error {
	if err := c.delete(ctx, at("/accommodation/vendor-accommodations/%d", id)); err != nil {
		return fmt.Errorf("delete vendor accommodation %d: %w", id, err)
	}
	return nil
}

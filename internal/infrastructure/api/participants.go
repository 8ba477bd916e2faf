package api

import (
	"context"
	"encoding/json"
	"fmt"

	"eventdesk/internal/domain/entities"
)

func (c *Client) GetParticipant(ctx context.Context, participantID int) (*entities.Participant, error) {
	var p entities.Participant
	if err := c.get(ctx, at("/event-registration/participant/%d", participantID), &p); err != nil {
		return nil, fmt.Errorf("get participant %d: %w", participantID, err)
	}
	return &p, nil
}

func (c *Client) GetEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	var e entities.Event
	if err := c.get(ctx, at("/events/%d", eventID), &e); err != nil {
		return nil, fmt.Errorf("get event %d: %w", eventID, err)
	}
	return &e, nil
}

// GetParticipantAccommodation accepts either a list or a single allocation
// object; the backend returns both depending on the stay type.
func (c *Client) GetParticipantAccommodation(ctx context.Context, participantID int) ([]entities.AccommodationAllocation, error) {
	var raw json.RawMessage
	if err := c.get(ctx, at("/accommodation/participant/%d/accommodation", participantID), &raw); err != nil {
		return nil, fmt.Errorf("get accommodation for participant %d: %w", participantID, err)
	}
	var list []entities.AccommodationAllocation
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var one entities.AccommodationAllocation
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("decode accommodation for participant %d: %w", participantID, err)
	}
	if one.ID == 0 {
		return []entities.AccommodationAllocation{}, nil
	}
	return []entities.AccommodationAllocation{one}, nil
}

func (c *Client) ListTransportBookings(ctx context.Context, participantID int) ([]entities.TransportBooking, error) {
	var out []entities.TransportBooking
	if err := c.get(ctx, at("/transport/bookings/?participant_id=%d", participantID), &out); err != nil {
		return nil, fmt.Errorf("list transport for participant %d: %w", participantID, err)
	}
	return out, nil
}

func (c *Client) ListFlightItineraries(ctx context.Context, participantID int) ([]entities.FlightItinerary, error) {
	var out []entities.FlightItinerary
	if err := c.get(ctx, at("/flights/participant/%d", participantID), &out); err != nil {
		return nil, fmt.Errorf("list flights for participant %d: %w", participantID, err)
	}
	return out, nil
}

func (c *Client) GetChecklistProgress(ctx context.Context, participantID int) (*entities.ChecklistProgress, error) {
	var out entities.ChecklistProgress
	if err := c.get(ctx, at("/checklist/participant/%d", participantID), &out); err != nil {
		return nil, fmt.Errorf("get checklist for participant %d: %w", participantID, err)
	}
	return &out, nil
}

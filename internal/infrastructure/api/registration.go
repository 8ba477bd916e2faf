package api

import (
	"context"
	"fmt"

	"eventdesk/internal/domain/entities"
)

func (c *Client) GetPublicEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	var out entities.Event
	if err := c.get(ctx, at("/events/%d/public", eventID), &out); err != nil {
		return nil, fmt.Errorf("get public event %d: %w", eventID, err)
	}
	return &out, nil
}

func (c *Client) CheckEmailRegistration(ctx context.Context, email string, eventID int) (*entities.EmailCheckResult, error) {
	body := struct {
		Email   string `json:"email"`
		EventID int    `json:"event_id"`
	}{Email: email, EventID: eventID}

	var out entities.EmailCheckResult
	if err := c.post(ctx, at("/check-email-registration"), body, &out); err != nil {
		return nil, fmt.Errorf("check email registration: %w", err)
	}
	return &out, nil
}

func (c *Client) PublicRegister(ctx context.Context, eventID int, form entities.RegistrationForm) error {
	body := entities.PublicRegistration{RegistrationForm: form, EventID: eventID}
	if err := c.post(ctx, at("/events/%d/public-register", eventID), body, nil); err != nil {
		return fmt.Errorf("public register for event %d: %w", eventID, err)
	}
	return nil
}

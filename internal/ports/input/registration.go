package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type Step int

const (
	StepPersonal Step = iota + 1
	StepContact
	StepTravel
	StepFinal
)

// Wizard is the client-held state of the public registration form.
type Wizard struct {
	Step Step                      `json:"step"`
	Form entities.RegistrationForm `json:"form"`
}

type RegistrationUseCase interface {
	PublicEvent(ctx context.Context, eventID int) (*entities.Event, error)
	Validate(w Wizard) []string
	Next(ctx context.Context, eventID int, w Wizard) (Wizard, error)
	Submit(ctx context.Context, eventID int, form entities.RegistrationForm) (Notice, error)
}

package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

// FieldDailyMeals is reported as missing when a daily traveller picks no meal.
const FieldDailyMeals = "dailyMeals"

var stepRequiredFields = map[input.Step][]string{
	input.StepPersonal: {
		"firstName", "lastName", "oc", "contractStatus", "contractType",
		"genderIdentity", "sex", "pronouns", "currentPosition",
	},
	input.StepContact: {"personalEmail", "phoneNumber"},
	input.StepTravel:  {"travellingInternationally", "accommodationType"},
	input.StepFinal:   {"codeOfConductConfirm", "travelRequirementsConfirm"},
}

// RequiredFields lists the text fields that must be filled to leave step.
func RequiredFields(step input.Step) []string {
	return slices.Clone(stepRequiredFields[step])
}

// ValidateStep returns the required fields of step that are still empty.
// An empty result means the wizard may move on.
func ValidateStep(form entities.RegistrationForm, step input.Step) []string {
	var missing []string
	for _, field := range stepRequiredFields[step] {
		if v, _ := form.Field(field); strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	if step == input.StepTravel &&
		form.AccommodationType == domain.AccommodationTravelDaily &&
		len(form.DailyMeals) == 0 {
		missing = append(missing, FieldDailyMeals)
	}
	return missing
}

// StepError reports the fields that block a step.
type StepError struct {
	Step    input.Step
	Missing []string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: missing %s", e.Step, strings.Join(e.Missing, ", "))
}

// Unwrap singles out the meal selection so the user gets the specific hint.
func (e *StepError) Unwrap() error {
	if slices.Contains(e.Missing, FieldDailyMeals) {
		return domain.ErrMealSelectionRequired
	}
	return domain.ErrIncompleteStep
}

// RegistrationBlockedError carries the backend's reason for refusing the
// email during the pre-check.
type RegistrationBlockedError struct {
	Message string
}

func (e *RegistrationBlockedError) Error() string {
	return "registration blocked: " + e.Message
}

func (e *RegistrationBlockedError) Unwrap() error {
	return domain.ErrAlreadyRegistered
}

func (e *RegistrationBlockedError) UserMessage() string {
	return e.Message
}

// Back moves the wizard one step back.
func Back(w input.Wizard) input.Wizard {
	if w.Step > input.StepPersonal {
		w.Step--
	}
	return w
}

// Reset wipes everything the participant typed.
func Reset() input.Wizard {
	return input.Wizard{Step: input.StepPersonal}
}

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	gateway    output.RegistrationGateway
	translator output.T
}

func NewRegistrationService(gateway output.RegistrationGateway, translator output.T) *RegistrationService {
	return &RegistrationService{gateway: gateway, translator: translator}
}

func (s *RegistrationService) PublicEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	return s.gateway.GetPublicEvent(ctx, eventID)
}

func (s *RegistrationService) Validate(w input.Wizard) []string {
	return ValidateStep(w.Form, w.Step)
}

// Next validates the current step and advances. Leaving the contact step
// first asks the backend whether the personal email is already registered.
func (s *RegistrationService) Next(ctx context.Context, eventID int, w input.Wizard) (input.Wizard, error) {
	if w.Step < input.StepPersonal || w.Step > input.StepFinal {
		return w, domain.ErrInvalidStep
	}
	if missing := ValidateStep(w.Form, w.Step); len(missing) > 0 {
		return w, &StepError{Step: w.Step, Missing: missing}
	}
	if w.Step == input.StepFinal {
		return w, nil
	}

	if w.Step == input.StepContact {
		res, err := s.gateway.CheckEmailRegistration(ctx, w.Form.PersonalEmail, eventID)
		switch {
		case err != nil:
			slog.Warn("email pre-check failed, continuing", "event_id", eventID, "error", err)
		case res.AlreadyRegistered:
			msg := res.Message
			if msg == "" {
				msg = s.translator.T(domain.ScopeFromContext(ctx).Locale, "error.already_registered", nil)
			}
			return w, &RegistrationBlockedError{Message: msg}
		}
	}

	w.Step++
	return w, nil
}

// validateAll collects the missing fields of every step. Step is the first
// step that blocks.
func validateAll(form entities.RegistrationForm) *StepError {
	var stepErr *StepError
	for step := input.StepPersonal; step <= input.StepFinal; step++ {
		missing := ValidateStep(form, step)
		if len(missing) == 0 {
			continue
		}
		if stepErr == nil {
			stepErr = &StepError{Step: step}
		}
		stepErr.Missing = append(stepErr.Missing, missing...)
	}
	return stepErr
}

// Submit validates every step before calling public-register. A missing meal
// selection is reported ahead of any other missing field. The returned
// notice is meant for the user whatever the outcome.
func (s *RegistrationService) Submit(ctx context.Context, eventID int, form entities.RegistrationForm) (input.Notice, error) {
	locale := domain.ScopeFromContext(ctx).Locale

	if stepErr := validateAll(form); stepErr != nil {
		descKey := "notice.registration.missing.description"
		if errors.Is(stepErr, domain.ErrMealSelectionRequired) {
			descKey = "notice.registration.meals.description"
		}
		return input.Notice{
			Title:       s.translator.T(locale, "notice.registration.missing.title", nil),
			Description: s.translator.T(locale, descKey, nil),
			Variant:     input.VariantDestructive,
		}, stepErr
	}

	if err := s.gateway.PublicRegister(ctx, eventID, form); err != nil {
		slog.Error("public registration failed", "event_id", eventID, "error", err)
		return input.Notice{
			Title:       s.translator.T(locale, "notice.registration.failed.title", nil),
			Description: s.translator.T(locale, "notice.registration.failed.description", nil),
			Variant:     input.VariantDestructive,
		}, err
	}

	slog.Info("public registration submitted", "event_id", eventID)
	return input.Notice{
		Title:       s.translator.T(locale, "notice.registration.success.title", nil),
		Description: s.translator.T(locale, "notice.registration.success.description", nil),
	}, nil
}

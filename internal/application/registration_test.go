package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

func completeForm() entities.RegistrationForm {
	return entities.RegistrationForm{
		FirstName: "Amina", LastName: "Otieno", OC: "OCA",
		ContractStatus: "on contract", ContractType: "msf", GenderIdentity: "woman",
		Sex: "female", Pronouns: "she/her", CurrentPosition: "Nurse",
		PersonalEmail: "amina@example.org", PhoneNumber: "+254700000000",
		TravellingInternationally: "no", AccommodationType: domain.AccommodationStaying,
		CodeOfConductConfirm: "yes", TravelRequirementsConfirm: "yes",
	}
}

func TestValidateStep(t *testing.T) {
	form := completeForm()
	for step := input.StepPersonal; step <= input.StepFinal; step++ {
		assert.Empty(t, ValidateStep(form, step), "step %d", step)
	}

	form.LastName = "  "
	form.Pronouns = ""
	assert.Equal(t, []string{"lastName", "pronouns"}, ValidateStep(form, input.StepPersonal))

	daily := completeForm()
	daily.AccommodationType = domain.AccommodationTravelDaily
	assert.Equal(t, []string{FieldDailyMeals}, ValidateStep(daily, input.StepTravel))
	daily.DailyMeals = []string{"Lunch"}
	assert.Empty(t, ValidateStep(daily, input.StepTravel))
}

func TestStepError_Unwrap(t *testing.T) {
	err := error(&StepError{Step: input.StepTravel, Missing: []string{"accommodationType"}})
	assert.ErrorIs(t, err, domain.ErrIncompleteStep)

	err = &StepError{Step: input.StepTravel, Missing: []string{"travellingInternationally", FieldDailyMeals}}
	assert.ErrorIs(t, err, domain.ErrMealSelectionRequired)
	assert.Equal(t, "meal_selection_required", domain.Code(err))
}

func TestBackAndReset(t *testing.T) {
	w := input.Wizard{Step: input.StepTravel, Form: completeForm()}
	assert.Equal(t, input.StepContact, Back(w).Step)
	assert.Equal(t, input.StepPersonal, Back(input.Wizard{Step: input.StepPersonal}).Step)

	r := Reset()
	assert.Equal(t, input.StepPersonal, r.Step)
	assert.Empty(t, r.Form.FirstName)
}

func TestRegistrationService_Next(t *testing.T) {
	t.Run("incomplete step stays", func(t *testing.T) {
		svc := NewRegistrationService(&mockBackend{}, keyTranslator{})
		w := input.Wizard{Step: input.StepPersonal}

		got, err := svc.Next(scopedCtx(), 3, w)

		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Len(t, stepErr.Missing, 9)
		assert.Equal(t, input.StepPersonal, got.Step)
	})

	t.Run("invalid step", func(t *testing.T) {
		svc := NewRegistrationService(&mockBackend{}, keyTranslator{})
		_, err := svc.Next(scopedCtx(), 3, input.Wizard{Step: 7})
		assert.ErrorIs(t, err, domain.ErrInvalidStep)
	})

	t.Run("already registered blocks contact step", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("CheckEmailRegistration", mock.Anything, "amina@example.org", 3).
			Return(&entities.EmailCheckResult{AlreadyRegistered: true, Message: "You are already registered for this event"}, nil)
		svc := NewRegistrationService(backend, keyTranslator{})

		got, err := svc.Next(scopedCtx(), 3, input.Wizard{Step: input.StepContact, Form: completeForm()})

		assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
		assert.Equal(t, input.StepContact, got.Step)
		n := ErrorNotice(keyTranslator{}, "en", err)
		assert.Equal(t, "You are already registered for this event", n.Description)
	})

	t.Run("pre-check failure does not block", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("CheckEmailRegistration", mock.Anything, "amina@example.org", 3).
			Return(nil, domain.ErrUpstreamUnavailable)
		svc := NewRegistrationService(backend, keyTranslator{})

		got, err := svc.Next(scopedCtx(), 3, input.Wizard{Step: input.StepContact, Form: completeForm()})

		require.NoError(t, err)
		assert.Equal(t, input.StepTravel, got.Step)
	})

	t.Run("advances without pre-check on other steps", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewRegistrationService(backend, keyTranslator{})

		got, err := svc.Next(scopedCtx(), 3, input.Wizard{Step: input.StepPersonal, Form: completeForm()})

		require.NoError(t, err)
		assert.Equal(t, input.StepContact, got.Step)
		backend.AssertNotCalled(t, "CheckEmailRegistration", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRegistrationService_Submit(t *testing.T) {
	t.Run("missing meals never reaches the backend", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewRegistrationService(backend, keyTranslator{})
		form := completeForm()
		form.AccommodationType = domain.AccommodationTravelDaily

		n, err := svc.Submit(scopedCtx(), 3, form)

		assert.ErrorIs(t, err, domain.ErrMealSelectionRequired)
		assert.Equal(t, "notice.registration.meals.description", n.Description)
		assert.Equal(t, input.VariantDestructive, n.Variant)
		backend.AssertNotCalled(t, "PublicRegister", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing field", func(t *testing.T) {
		svc := NewRegistrationService(&mockBackend{}, keyTranslator{})
		form := completeForm()
		form.CodeOfConductConfirm = ""

		n, err := svc.Submit(scopedCtx(), 3, form)

		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, input.StepFinal, stepErr.Step)
		assert.Equal(t, "notice.registration.missing.description", n.Description)
	})

	t.Run("missing meals wins over earlier missing fields", func(t *testing.T) {
		backend := &mockBackend{}
		svc := NewRegistrationService(backend, keyTranslator{})
		form := completeForm()
		form.FirstName = ""
		form.AccommodationType = domain.AccommodationTravelDaily

		n, err := svc.Submit(scopedCtx(), 3, form)

		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		assert.Equal(t, input.StepPersonal, stepErr.Step)
		assert.ElementsMatch(t, []string{"firstName", FieldDailyMeals}, stepErr.Missing)
		assert.ErrorIs(t, err, domain.ErrMealSelectionRequired)
		assert.Equal(t, "notice.registration.meals.description", n.Description)
		backend.AssertNotCalled(t, "PublicRegister", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("backend failure", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("PublicRegister", mock.Anything, 3, completeForm()).Return(errors.New("500"))
		svc := NewRegistrationService(backend, keyTranslator{})

		n, err := svc.Submit(scopedCtx(), 3, completeForm())

		require.Error(t, err)
		assert.Equal(t, "notice.registration.failed.title", n.Title)
	})

	t.Run("success", func(t *testing.T) {
		backend := &mockBackend{}
		backend.On("PublicRegister", mock.Anything, 3, completeForm()).Return(nil)
		svc := NewRegistrationService(backend, keyTranslator{})

		n, err := svc.Submit(scopedCtx(), 3, completeForm())

		require.NoError(t, err)
		assert.Equal(t, "notice.registration.success.title", n.Title)
		assert.Empty(t, n.Variant)
		backend.AssertExpectations(t)
	})
}

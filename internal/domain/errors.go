package domain

import "errors"

// Domain errors.
var (
	ErrNotFound               = errors.New("resource not found")
	ErrValidation             = errors.New("validation failed")
	ErrUnauthorized           = errors.New("session expired")
	ErrForbidden              = errors.New("access denied")
	ErrConflict               = errors.New("resource conflict")
	ErrUpstreamUnavailable    = errors.New("backend unavailable")
	ErrMissingTenant          = errors.New("tenant scope is required")
	ErrParticipantNotFound    = errors.New("participant not found")
	ErrNoVoucherAllocation    = errors.New("participant has no drink voucher allocation")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrAlreadyRegistered      = errors.New("email already registered for this event")
	ErrIncompleteStep         = errors.New("required fields are missing")
	ErrMealSelectionRequired  = errors.New("at least one meal option is required")
	ErrInvalidStep            = errors.New("invalid registration step")
	ErrRequirementNameMissing = errors.New("additional requirement name is required")
	ErrChatReadOnly           = errors.New("chat room is read only")
	ErrEmptyMessage           = errors.New("message is empty")
)

var codes = []struct {
	err  error
	code string
}{
	{ErrParticipantNotFound, "participant_not_found"},
	{ErrNoVoucherAllocation, "no_voucher_allocation"},
	{ErrInvalidQuantity, "invalid_quantity"},
	{ErrAlreadyRegistered, "already_registered"},
	{ErrMealSelectionRequired, "meal_selection_required"},
	{ErrIncompleteStep, "incomplete_step"},
	{ErrInvalidStep, "invalid_step"},
	{ErrRequirementNameMissing, "requirement_name_missing"},
	{ErrChatReadOnly, "chat_read_only"},
	{ErrEmptyMessage, "empty_message"},
	{ErrMissingTenant, "missing_tenant"},
	{ErrUnauthorized, "unauthorized"},
	{ErrForbidden, "forbidden"},
	{ErrNotFound, "not_found"},
	{ErrConflict, "conflict"},
	{ErrValidation, "validation"},
	{ErrUpstreamUnavailable, "upstream_unavailable"},
}

// Code returns the stable code of the first domain error found in err's chain,
// or "" when err does not wrap one. Specific errors win over generic ones.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

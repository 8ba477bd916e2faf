package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/application"
	"eventdesk/internal/domain"
	"eventdesk/internal/ports/input"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type errorBody struct {
	Error       string   `json:"error"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Missing     []string `json:"missing,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write response failed", "error", err)
	}
}

// statusFor maps an error to the HTTP status returned to the browser.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrParticipantNotFound),
		errors.Is(err, domain.ErrNoVoucherAllocation),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrChatReadOnly),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrMissingTenant),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrIncompleteStep),
		errors.Is(err, domain.ErrMealSelectionRequired),
		errors.Is(err, domain.ErrInvalidStep),
		errors.Is(err, domain.ErrRequirementNameMissing),
		errors.Is(err, domain.ErrEmptyMessage):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := domain.Code(err)
	if code == "" {
		code = "internal"
	}
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err,
			"request_id", domain.ScopeFromContext(r.Context()).RequestID)
	}

	n := application.ErrorNotice(h.translator, h.locale(r), err)
	body := errorBody{Error: code, Title: n.Title, Description: n.Description}
	var stepErr *application.StepError
	if errors.As(err, &stepErr) {
		body.Missing = stepErr.Missing
	}
	writeJSON(w, status, body)
}

// respondNotice answers with the notice the service built, using the error
// only for the status code.
func (h *Handler) respondNotice(w http.ResponseWriter, r *http.Request, n input.Notice, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, map[string]any{"notice": n})
		return
	}
	body := map[string]any{"error": domain.Code(err), "notice": n}
	var stepErr *application.StepError
	if errors.As(err, &stepErr) {
		body["missing"] = stepErr.Missing
	}
	writeJSON(w, statusFor(err), body)
}

func (h *Handler) locale(r *http.Request) string {
	if l := domain.ScopeFromContext(r.Context()).Locale; l != "" {
		return l
	}
	return h.defaultLocale
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v: %w", err, domain.ErrValidation)
	}
	return nil
}

func intParam(ps httprouter.Params, name string) (int, error) {
	v, err := strconv.Atoi(ps.ByName(name))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, ps.ByName(name), domain.ErrValidation)
	}
	return v, nil
}

// queryInt returns the integer query value, or def when it is absent or not
// a number.
func queryInt(r *http.Request, name string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

func (h *Handler) publicEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	e, err := h.uc.Registration.PublicEvent(r.Context(), eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

type validateResponse struct {
	Valid   bool     `json:"valid"`
	Missing []string `json:"missing"`
}

func (h *Handler) validateRegistrationStep(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var wiz input.Wizard
	if err := decodeJSON(r, &wiz); err != nil {
		h.respondError(w, r, err)
		return
	}
	missing := h.uc.Registration.Validate(wiz)
	if missing == nil {
		missing = []string{}
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: len(missing) == 0, Missing: missing})
}

func (h *Handler) nextRegistrationStep(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var wiz input.Wizard
	if err := decodeJSON(r, &wiz); err != nil {
		h.respondError(w, r, err)
		return
	}
	next, err := h.uc.Registration.Next(r.Context(), eventID, wiz)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

func (h *Handler) submitRegistration(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var form entities.RegistrationForm
	if err := decodeJSON(r, &form); err != nil {
		h.respondError(w, r, err)
		return
	}
	n, err := h.uc.Registration.Submit(r.Context(), eventID, form)
	h.respondNotice(w, r, n, err)
}

package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/ports/input"
)

func participantAndEvent(ps httprouter.Params) (participantID, eventID int, err error) {
	if eventID, err = intParam(ps, "eventID"); err != nil {
		return 0, 0, err
	}
	if participantID, err = intParam(ps, "participantID"); err != nil {
		return 0, 0, err
	}
	return participantID, eventID, nil
}

func (h *Handler) getParticipantDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	participantID, eventID, err := participantAndEvent(ps)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	d, err := h.uc.Details.Load(r.Context(), participantID, eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (h *Handler) redeemVouchers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	participantID, eventID, err := participantAndEvent(ps)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req input.RedeemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	req.ParticipantID, req.EventID = participantID, eventID

	out, err := h.uc.Vouchers.Redeem(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) editVouchers(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	participantID, eventID, err := participantAndEvent(ps)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req input.EditVoucherRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	req.ParticipantID, req.EventID = participantID, eventID

	out, err := h.uc.Vouchers.Edit(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) voucherHistory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	participantID, eventID, err := participantAndEvent(ps)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	rows, err := h.uc.Vouchers.History(r.Context(), participantID, eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

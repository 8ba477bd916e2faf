package httpapi

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/domain"
)

type sendMessageRequest struct {
	Message          string `json:"message"`
	ReplyToMessageID *int   `json:"reply_to_message_id,omitempty"`
}

func (h *Handler) listChatRooms(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	eventID := queryInt(r, "event_id", 0)
	if eventID <= 0 {
		h.respondError(w, r, fmt.Errorf("event_id query parameter is required: %w", domain.ErrValidation))
		return
	}
	rooms, err := h.uc.Chat.Rooms(r.Context(), eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// pollRoom answers one poll. The snapshot carries its sequence number so the
// browser can drop a response that arrives after a newer one.
func (h *Handler) pollRoom(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID, err := intParam(ps, "roomID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	snap, err := h.uc.Chat.FetchRoom(r.Context(), roomID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) sendRoomMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	roomID, err := intParam(ps, "roomID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.uc.Chat.SendRoomMessage(r.Context(), roomID, req.Message, req.ReplyToMessageID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) directThread(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	msgs, err := h.uc.Chat.DirectThread(r.Context(), ps.ByName("email"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (h *Handler) sendDirectMessage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	m, err := h.uc.Chat.SendDirectMessage(r.Context(), ps.ByName("email"), req.Message)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *Handler) listConversations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	convs, err := h.uc.Chat.Conversations(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convs)
}

package httpapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

func (h *Handler) listBadgeTemplates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := h.uc.Badges.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) createBadgeTemplate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var t entities.BadgeTemplate
	if err := decodeJSON(r, &t); err != nil {
		h.respondError(w, r, err)
		return
	}
	created, err := h.uc.Badges.Create(r.Context(), t)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateBadgeTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var t entities.BadgeTemplate
	if err := decodeJSON(r, &t); err != nil {
		h.respondError(w, r, err)
		return
	}
	updated, err := h.uc.Badges.Update(r.Context(), id, t)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteBadgeTemplate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Badges.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	certs, err := h.uc.Certificates.List(r.Context(), eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	templates, err := h.uc.Certificates.Templates(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"certificates": certs, "templates": templates})
}

func (h *Handler) createCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var c entities.EventCertificate
	if err := decodeJSON(r, &c); err != nil {
		h.respondError(w, r, err)
		return
	}
	created, err := h.uc.Certificates.Create(r.Context(), eventID, c)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	certificateID, err := intParam(ps, "certificateID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var c entities.EventCertificate
	if err := decodeJSON(r, &c); err != nil {
		h.respondError(w, r, err)
		return
	}
	updated, err := h.uc.Certificates.Update(r.Context(), eventID, certificateID, c)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteCertificate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	certificateID, err := intParam(ps, "certificateID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Certificates.Delete(r.Context(), eventID, certificateID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listEventBadges(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	badges, err := h.uc.Certificates.Badges(r.Context(), eventID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, badges)
}

func (h *Handler) createEventBadge(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var b entities.EventBadge
	if err := decodeJSON(r, &b); err != nil {
		h.respondError(w, r, err)
		return
	}
	created, err := h.uc.Certificates.CreateBadge(r.Context(), eventID, b)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateEventBadge(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	badgeID, err := intParam(ps, "badgeID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var b entities.EventBadge
	if err := decodeJSON(r, &b); err != nil {
		h.respondError(w, r, err)
		return
	}
	updated, err := h.uc.Certificates.UpdateBadge(r.Context(), eventID, badgeID, b)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteEventBadge(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	badgeID, err := intParam(ps, "badgeID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Certificates.DeleteBadge(r.Context(), eventID, badgeID); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTravelRequirements(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := h.uc.Travel.List(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) upsertTravelRequirement(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var in input.TravelRequirementInput
	if err := decodeJSON(r, &in); err != nil {
		h.respondError(w, r, err)
		return
	}
	out, err := h.uc.Travel.Upsert(r.Context(), ps.ByName("country"), in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) searchVendorHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, err := h.uc.Vendors.Search(r.Context(), r.URL.Query().Get("q"), queryInt(r, "page", 1), queryInt(r, "page_size", 0))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) createVendorHotel(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var v entities.VendorAccommodation
	if err := decodeJSON(r, &v); err != nil {
		h.respondError(w, r, err)
		return
	}
	created, err := h.uc.Vendors.Create(r.Context(), v)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateVendorHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var v entities.VendorAccommodation
	if err := decodeJSON(r, &v); err != nil {
		h.respondError(w, r, err)
		return
	}
	updated, err := h.uc.Vendors.Update(r.Context(), id, v)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteVendorHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Vendors.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

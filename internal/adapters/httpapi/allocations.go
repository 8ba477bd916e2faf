package httpapi

import (
	"bytes"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"eventdesk/internal/application"
	"eventdesk/internal/ports/input"
)

func allocationQuery(r *http.Request) input.AllocationQuery {
	q := r.URL.Query()
	return input.AllocationQuery{
		Filter: input.AllocationFilter{
			Search:    q.Get("search"),
			Occupancy: q.Get("occupancy"),
			Room:      q.Get("room"),
			Event:     q.Get("event"),
			Gender:    q.Get("gender"),
			Status:    q.Get("status"),
		},
		Sort: input.SortState{
			Column:    q.Get("sort"),
			Direction: input.SortDirection(q.Get("dir")),
		},
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 0),
	}
}

func (h *Handler) listAllocations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	page, err := h.uc.Allocations.List(r.Context(), eventID, allocationQuery(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) exportAllocations(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	// Buffered so that a failure can still be answered as JSON.
	var buf bytes.Buffer
	if err := h.uc.Allocations.Export(r.Context(), eventID, allocationQuery(r), &buf); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+application.ExportFilename(h.location)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) checkInAllocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Allocations.CheckIn(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllocation(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := intParam(ps, "id")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if err := h.uc.Allocations.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkCheckInRequest struct {
	AllocationIDs []int `json:"allocation_ids"`
}

func (h *Handler) bulkCheckIn(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID, err := intParam(ps, "eventID")
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req bulkCheckInRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}
	res, err := h.uc.Allocations.BulkCheckIn(r.Context(), eventID, req.AllocationIDs)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) pendingAllocations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	n, err := h.uc.Allocations.PendingCount(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

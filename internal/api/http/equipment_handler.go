package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"toala-backend/internal/domain"
)

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req equipmentRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.equipment.Create(r.Context(), user, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	filter, err := parseEquipmentFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.equipment.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	view, err := h.equipment.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ListMyEquipment(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.equipment.ListMine(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Categories)
}

// parseEquipmentFilter reads category, location, max_price, skip and limit.
// An absent or zero max_price means no price bound.
func parseEquipmentFilter(r *http.Request) (domain.EquipmentFilter, error) {
	q := r.URL.Query()
	filter := domain.EquipmentFilter{
		Category: domain.EquipmentCategory(q.Get("category")),
		Location: q.Get("location"),
	}

	if v := q.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, domain.NewValidationError("max_price must be a number")
		}
		filter.MaxPrice = price
	}
	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil {
			return filter, domain.NewValidationError("skip must be an integer")
		}
		filter.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, domain.NewValidationError("limit must be an integer")
		}
		filter.Limit = limit
	}
	return filter, nil
}

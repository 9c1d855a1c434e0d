package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"toala-backend/internal/domain"
)

func (h *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req rentalRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.rentals.Create(r.Context(), user, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ListReceivedRequests(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.rentals.ListReceived(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) ListSentRequests(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.rentals.ListSent(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) GetRequest(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.rentals.Get(r.Context(), user, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateRequestStatus takes the new status from the status query parameter,
// falling back to a JSON body of the form {"status": "..."}.
func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" && r.Body != nil {
		var body statusRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			status = body.Status
		}
	}
	if status == "" {
		writeError(w, r, domain.NewValidationError("status is required"))
		return
	}

	msg, err := h.rentals.SetStatus(r.Context(), user, mux.Vars(r)["id"], domain.RequestStatus(status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

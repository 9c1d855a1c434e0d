package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req messageRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.messages.Send(r.Context(), user, req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ListMessages serves GET /api/messages/{id}, where id is the rental request.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.messages.ListForRequest(r.Context(), user, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

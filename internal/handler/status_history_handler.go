package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

func (h *Handlers) GetStatusHistories(w http.ResponseWriter, r *http.Request) {
	if resourceUUID := r.URL.Query().Get("ressource_uuid"); resourceUUID != "" {
		entries, err := h.HistoryService.GetByResourceUUID(r.Context(), resourceUUID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, entries, http.StatusOK)
		return
	}

	entries, err := h.HistoryService.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, entries, http.StatusOK)
}

func (h *Handlers) GetStatusHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := h.HistoryService.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, entry, http.StatusOK)
}

func (h *Handlers) CreateStatusHistory(w http.ResponseWriter, r *http.Request) {
	var req service.CreateStatusHistoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.HistoryService.CreateHistory(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, entry, http.StatusCreated)
}

func (h *Handlers) DeleteStatusHistory(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.HistoryService.DeleteHistory(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if !deleted {
		WriteError(w, "Status history not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Status history deleted"}, http.StatusOK)
}

// MutateStatusHistory rejects PUT and PATCH: the history is an audit trail
// and its rows never change after creation.
func (h *Handlers) MutateStatusHistory(w http.ResponseWriter, r *http.Request) {
	WriteError(w, "Status history entries are append-only", http.StatusMethodNotAllowed)
}

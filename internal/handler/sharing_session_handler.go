package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

func (h *Handlers) GetSharingSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.SessionRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, sessions, http.StatusOK)
}

func (h *Handlers) GetSharingSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.SessionRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, session, http.StatusOK)
}

func (h *Handlers) CreateSharingSession(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSharingSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.SessionService.CreateSession(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, session, http.StatusCreated)
}

func (h *Handlers) UpdateSharingSession(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateSharingSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.SharingSessionUUID = mux.Vars(r)["uuid"]

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.SessionService.UpdateSession(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, session, http.StatusOK)
}

func (h *Handlers) PatchSharingSession(w http.ResponseWriter, r *http.Request) {
	var req service.PatchSharingSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.SharingSessionUUID = mux.Vars(r)["uuid"]

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.SessionService.PatchSession(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, session, http.StatusOK)
}

func (h *Handlers) DeleteSharingSession(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionService.DeleteSession(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Sharing session deleted"}, http.StatusOK)
}

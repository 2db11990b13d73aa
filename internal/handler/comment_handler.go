package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	resourceUUID := r.URL.Query().Get("ressource_uuid")
	if resourceUUID == "" {
		WriteError(w, "Missing ressource_uuid query parameter", http.StatusBadRequest)
		return
	}

	comments, err := h.CommentRepo.GetByResourceUUID(r.Context(), resourceUUID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) GetComment(w http.ResponseWriter, r *http.Request) {
	comment, err := h.CommentRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.CommentUUID = mux.Vars(r)["uuid"]

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) PatchComment(w http.ResponseWriter, r *http.Request) {
	var req service.PatchCommentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.CommentUUID = mux.Vars(r)["uuid"]

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.PatchComment(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.CommentService.DeleteComment(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Comment deleted"}, http.StatusOK)
}

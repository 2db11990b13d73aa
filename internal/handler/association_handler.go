package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

// The three association endpoints (/api/have, /api/refer, /api/reference)
// share one request/response shape; only the parameter names and the
// underlying service differ. Methods cannot carry type parameters, so each
// endpoint is a thin wrapper around the generic helpers below.

func (h *Handlers) GetHave(w http.ResponseWriter, r *http.Request) {
	associationGet(w, r, h.Have, "tag_uuid", "ressource_uuid")
}

func (h *Handlers) CreateHave(w http.ResponseWriter, r *http.Request) {
	associationCreate(w, r, h.Have, "tag_uuid", "ressource_uuid")
}

func (h *Handlers) DeleteHave(w http.ResponseWriter, r *http.Request) {
	associationDelete(w, r, h.Have, "tag_uuid", "ressource_uuid")
}

func (h *Handlers) GetRefer(w http.ResponseWriter, r *http.Request) {
	associationGet(w, r, h.Refer, "tag_uuid", "sharing_session_uuid")
}

func (h *Handlers) CreateRefer(w http.ResponseWriter, r *http.Request) {
	associationCreate(w, r, h.Refer, "tag_uuid", "sharing_session_uuid")
}

func (h *Handlers) DeleteRefer(w http.ResponseWriter, r *http.Request) {
	associationDelete(w, r, h.Refer, "tag_uuid", "sharing_session_uuid")
}

func (h *Handlers) GetReference(w http.ResponseWriter, r *http.Request) {
	associationGet(w, r, h.Reference, "ressource_uuid", "sharing_session_uuid")
}

func (h *Handlers) CreateReference(w http.ResponseWriter, r *http.Request) {
	associationCreate(w, r, h.Reference, "ressource_uuid", "sharing_session_uuid")
}

func (h *Handlers) DeleteReference(w http.ResponseWriter, r *http.Request) {
	associationDelete(w, r, h.Reference, "ressource_uuid", "sharing_session_uuid")
}

// associationGet lists the entities on the other side of the join: with the
// left parameter it returns right-side entities and vice versa. Exactly one
// of the two must be present.
func associationGet[L any, R any](w http.ResponseWriter, r *http.Request, svc service.AssociationService[L, R], leftParam, rightParam string) {
	leftID := r.URL.Query().Get(leftParam)
	rightID := r.URL.Query().Get(rightParam)

	switch {
	case leftID != "" && rightID == "":
		rights, err := svc.RightsByLeft(r.Context(), leftID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, rights, http.StatusOK)
	case rightID != "" && leftID == "":
		lefts, err := svc.LeftsByRight(r.Context(), rightID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, lefts, http.StatusOK)
	default:
		WriteError(w, "Provide exactly one of "+leftParam+" or "+rightParam, http.StatusBadRequest)
	}
}

func associationCreate[L any, R any](w http.ResponseWriter, r *http.Request, svc service.AssociationService[L, R], leftParam, rightParam string) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	leftID := body[leftParam]
	rightID := body[rightParam]
	if leftID == "" || rightID == "" {
		WriteError(w, "Both "+leftParam+" and "+rightParam+" are required", http.StatusBadRequest)
		return
	}

	if err := svc.Create(r.Context(), leftID, rightID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{leftParam: leftID, rightParam: rightID}, http.StatusCreated)
}

func associationDelete[L any, R any](w http.ResponseWriter, r *http.Request, svc service.AssociationService[L, R], leftParam, rightParam string) {
	leftID := r.URL.Query().Get(leftParam)
	rightID := r.URL.Query().Get(rightParam)

	if leftID == "" || rightID == "" {
		WriteError(w, "Both "+leftParam+" and "+rightParam+" are required", http.StatusBadRequest)
		return
	}

	deleted, err := svc.Delete(r.Context(), leftID, rightID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if !deleted {
		WriteError(w, "Association not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Association deleted"}, http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

func (h *Handlers) GetResources(w http.ResponseWriter, r *http.Request) {
	if userUUID := r.URL.Query().Get("user_uuid"); userUUID != "" {
		resources, err := h.ResourceRepo.GetByUserUUID(r.Context(), userUUID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteSuccess(w, resources, http.StatusOK)
		return
	}

	resources, err := h.ResourceRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resources, http.StatusOK)
}

func (h *Handlers) GetResource(w http.ResponseWriter, r *http.Request) {
	resource, err := h.ResourceRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) CreateResource(w http.ResponseWriter, r *http.Request) {
	var req service.CreateResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.ResourceService.CreateResource(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusCreated)
}

func (h *Handlers) UpdateResource(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.ResourceUUID = mux.Vars(r)["uuid"]

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.ResourceService.UpdateResource(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) PatchResource(w http.ResponseWriter, r *http.Request) {
	var req service.PatchResourceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.ResourceUUID = mux.Vars(r)["uuid"]
	if req.UpdatedBy == "" {
		req.UpdatedBy, _ = r.Context().Value("userUUID").(string)
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.ResourceService.PatchResource(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := h.ResourceService.DeleteResource(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Resource deleted"}, http.StatusOK)
}

// UpdateResourceStatusByUUID handles PATCH /api/ressources: it moves the
// named resource to a new status. The history row is appended inside the
// same transaction as the status write.
func (h *Handlers) UpdateResourceStatusByUUID(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ResourceUUID  string `json:"ressource_uuid" validate:"required,uuid4"`
		NewStatusUUID string `json:"newStatusUuid" validate:"required,uuid4"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	updatedBy, _ := r.Context().Value("userUUID").(string)

	resource, err := h.ResourceService.UpdateStatus(r.Context(), req.ResourceUUID, req.NewStatusUUID, updatedBy)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resource, http.StatusOK)
}

func (h *Handlers) AddAttachment(w http.ResponseWriter, r *http.Request) {
	resourceUUID := mux.Vars(r)["uuid"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		WriteError(w, "File too large", http.StatusBadRequest)
		return
	}

	attachment, err := h.ResourceService.AddAttachment(r.Context(), resourceUUID, header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, attachment, http.StatusCreated)
}

func (h *Handlers) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	if err := h.ResourceService.DeleteAttachment(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Attachment deleted"}, http.StatusOK)
}

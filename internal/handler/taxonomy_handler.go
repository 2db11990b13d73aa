package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

// Roles, resource types, resource statuses and tags are name-unique lookup
// tables; their handlers go straight to the repositories.

func (h *Handlers) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.RoleRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, roles, http.StatusOK)
}

func (h *Handlers) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.RoleRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, role, http.StatusOK)
}

func (h *Handlers) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoleName string `json:"role_name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	role := &models.Role{RoleName: req.RoleName}
	if err := h.RoleRepo.Create(r.Context(), role); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, role, http.StatusCreated)
}

func (h *Handlers) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoleName string `json:"role_name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	role := &models.Role{RoleUUID: mux.Vars(r)["uuid"], RoleName: req.RoleName}
	if err := h.RoleRepo.Update(r.Context(), role); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, role, http.StatusOK)
}

// PatchRole applies a partial update: an absent field leaves the stored
// value alone, and a body without any field just returns the current row.
func (h *Handlers) PatchRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoleName *string `json:"role_name" validate:"omitempty,min=1,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	role, err := h.RoleRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if req.RoleName != nil {
		role.RoleName = *req.RoleName
		if err := h.RoleRepo.Update(r.Context(), role); err != nil {
			WriteServiceError(w, err)
			return
		}
	}

	WriteSuccess(w, role, http.StatusOK)
}

func (h *Handlers) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.RoleRepo.Delete(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Role deleted"}, http.StatusOK)
}

func (h *Handlers) GetResourceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.ResourceTypeRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, types, http.StatusOK)
}

func (h *Handlers) GetResourceType(w http.ResponseWriter, r *http.Request) {
	resourceType, err := h.ResourceTypeRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resourceType, http.StatusOK)
}

func (h *Handlers) CreateResourceType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TypeName string `json:"type_name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resourceType := &models.ResourceType{TypeName: req.TypeName}
	if err := h.ResourceTypeRepo.Create(r.Context(), resourceType); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resourceType, http.StatusCreated)
}

func (h *Handlers) UpdateResourceType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TypeName string `json:"type_name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resourceType := &models.ResourceType{ResourceTypeUUID: mux.Vars(r)["uuid"], TypeName: req.TypeName}
	if err := h.ResourceTypeRepo.Update(r.Context(), resourceType); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, resourceType, http.StatusOK)
}

func (h *Handlers) PatchResourceType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TypeName *string `json:"type_name" validate:"omitempty,min=1,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resourceType, err := h.ResourceTypeRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if req.TypeName != nil {
		resourceType.TypeName = *req.TypeName
		if err := h.ResourceTypeRepo.Update(r.Context(), resourceType); err != nil {
			WriteServiceError(w, err)
			return
		}
	}

	WriteSuccess(w, resourceType, http.StatusOK)
}

func (h *Handlers) DeleteResourceType(w http.ResponseWriter, r *http.Request) {
	if err := h.ResourceTypeRepo.Delete(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Resource type deleted"}, http.StatusOK)
}

func (h *Handlers) GetResourceStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.ResourceStatusRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, statuses, http.StatusOK)
}

func (h *Handlers) GetResourceStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.ResourceStatusRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, status, http.StatusOK)
}

func (h *Handlers) CreateResourceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := &models.ResourceStatus{Name: req.Name}
	if err := h.ResourceStatusRepo.Create(r.Context(), status); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, status, http.StatusCreated)
}

func (h *Handlers) UpdateResourceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	status := &models.ResourceStatus{ResourceStatusUUID: mux.Vars(r)["uuid"], Name: req.Name}
	if err := h.ResourceStatusRepo.Update(r.Context(), status); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, status, http.StatusOK)
}

func (h *Handlers) PatchResourceStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name *string `json:"name" validate:"omitempty,min=1,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	status, err := h.ResourceStatusRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if req.Name != nil {
		status.Name = *req.Name
		if err := h.ResourceStatusRepo.Update(r.Context(), status); err != nil {
			WriteServiceError(w, err)
			return
		}
	}

	WriteSuccess(w, status, http.StatusOK)
}

func (h *Handlers) DeleteResourceStatus(w http.ResponseWriter, r *http.Request) {
	if err := h.ResourceStatusRepo.Delete(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Resource status deleted"}, http.StatusOK)
}

func (h *Handlers) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.TagRepo.GetAll(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, tags, http.StatusOK)
}

func (h *Handlers) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.TagRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, tag, http.StatusOK)
}

func (h *Handlers) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TagTitle string `json:"tag_title" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag := &models.Tag{TagTitle: req.TagTitle}
	if err := h.TagRepo.Create(r.Context(), tag); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, tag, http.StatusCreated)
}

func (h *Handlers) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TagTitle string `json:"tag_title" validate:"required,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag := &models.Tag{TagUUID: mux.Vars(r)["uuid"], TagTitle: req.TagTitle}
	if err := h.TagRepo.Update(r.Context(), tag); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, tag, http.StatusOK)
}

func (h *Handlers) PatchTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TagTitle *string `json:"tag_title" validate:"omitempty,min=1,max=64"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, err := h.TagRepo.GetByUUID(r.Context(), mux.Vars(r)["uuid"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	if req.TagTitle != nil {
		tag.TagTitle = *req.TagTitle
		if err := h.TagRepo.Update(r.Context(), tag); err != nil {
			WriteServiceError(w, err)
			return
		}
	}

	WriteSuccess(w, tag, http.StatusOK)
}

func (h *Handlers) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.TagRepo.Delete(r.Context(), mux.Vars(r)["uuid"]); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"message": "Tag deleted"}, http.StatusOK)
}

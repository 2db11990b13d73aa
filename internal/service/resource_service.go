package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/config"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/storage"
)

type CreateResourceRequest struct {
	Title              string  `json:"title" validate:"required,max=255"`
	Content            string  `json:"content" validate:"required"`
	Summary            *string `json:"summary"`
	UserUUID           string  `json:"user_uuid" validate:"required,uuid4"`
	ResourceTypeUUID   string  `json:"ressource_type_uuid" validate:"required,uuid4"`
	ResourceStatusUUID string  `json:"ressource_status_uuid" validate:"required,uuid4"`
}

type UpdateResourceRequest struct {
	ResourceUUID     string  `json:"ressource_uuid"`
	Title            string  `json:"title" validate:"required,max=255"`
	Content          string  `json:"content" validate:"required"`
	Summary          *string `json:"summary"`
	IsReported       *bool   `json:"is_reported"`
	UpdatedBy        string  `json:"updated_by" validate:"required,uuid4"`
	ResourceTypeUUID string  `json:"ressource_type_uuid" validate:"required,uuid4"`
}

// PatchResourceRequest carries pointer fields: only the ones present in the
// request body are written. The status column has its own PATCH operation
// and is never touched here.
type PatchResourceRequest struct {
	ResourceUUID     string  `json:"ressource_uuid"`
	Title            *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content          *string `json:"content" validate:"omitempty,min=1"`
	Summary          *string `json:"summary"`
	IsReported       *bool   `json:"is_reported"`
	UpdatedBy        string  `json:"updated_by" validate:"omitempty,uuid4"`
	ResourceTypeUUID *string `json:"ressource_type_uuid" validate:"omitempty,uuid4"`
}

type ResourceService interface {
	CreateResource(ctx context.Context, req CreateResourceRequest) (*models.Resource, error)
	UpdateResource(ctx context.Context, req UpdateResourceRequest) (*models.Resource, error)
	PatchResource(ctx context.Context, req PatchResourceRequest) (*models.Resource, error)
	DeleteResource(ctx context.Context, resourceUUID string) error
	// UpdateStatus moves a resource to a new status; the matching history
	// row is appended in the same transaction by the repository.
	UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error)
	AddAttachment(ctx context.Context, resourceUUID, fileName string, file io.Reader, size int64) (*models.Attachment, error)
	DeleteAttachment(ctx context.Context, attachmentUUID string) error
}

type resourceService struct {
	resourceRepo   repository.ResourceRepository
	attachmentRepo repository.AttachmentRepository
	storage        storage.Storage
	cfg            *config.Config
}

func NewResourceService(resourceRepo repository.ResourceRepository, attachmentRepo repository.AttachmentRepository, storage storage.Storage, cfg *config.Config) ResourceService {
	return &resourceService{
		resourceRepo:   resourceRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		cfg:            cfg,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, req CreateResourceRequest) (*models.Resource, error) {
	resource := &models.Resource{
		Title:              req.Title,
		Content:            req.Content,
		Summary:            req.Summary,
		UserUUID:           req.UserUUID,
		ResourceTypeUUID:   req.ResourceTypeUUID,
		ResourceStatusUUID: req.ResourceStatusUUID,
	}

	err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *resourceService) UpdateResource(ctx context.Context, req UpdateResourceRequest) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByUUID(ctx, req.ResourceUUID)
	if err != nil {
		return nil, err
	}

	resource.Title = req.Title
	resource.Content = req.Content
	resource.Summary = req.Summary
	resource.UpdatedBy = &req.UpdatedBy
	resource.ResourceTypeUUID = req.ResourceTypeUUID
	if req.IsReported != nil {
		resource.IsReported = *req.IsReported
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *resourceService) PatchResource(ctx context.Context, req PatchResourceRequest) (*models.Resource, error) {
	resource, err := s.resourceRepo.GetByUUID(ctx, req.ResourceUUID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		resource.Title = *req.Title
	}
	if req.Content != nil {
		resource.Content = *req.Content
	}
	if req.Summary != nil {
		resource.Summary = req.Summary
	}
	if req.IsReported != nil {
		resource.IsReported = *req.IsReported
	}
	if req.ResourceTypeUUID != nil {
		resource.ResourceTypeUUID = *req.ResourceTypeUUID
	}
	if req.UpdatedBy != "" {
		updatedBy := req.UpdatedBy
		resource.UpdatedBy = &updatedBy
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, resourceUUID string) error {
	attachments, err := s.attachmentRepo.GetByResourceUUID(ctx, resourceUUID)
	if err != nil {
		return err
	}

	if err := s.resourceRepo.Delete(ctx, resourceUUID); err != nil {
		return err
	}

	// Attachment rows go with the resource via ON DELETE CASCADE; the
	// stored objects need an explicit cleanup.
	for _, attachment := range attachments {
		if objectName, ok := s.objectNameFromURL(attachment.FileURL); ok {
			if err := s.storage.DeleteFile(ctx, objectName); err != nil {
				log.Printf("Warning: failed to delete attachment object %s: %v", objectName, err)
			}
		}
	}

	return nil
}

func (s *resourceService) UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error) {
	return s.resourceRepo.UpdateStatus(ctx, resourceUUID, newStatusUUID, updatedBy)
}

func (s *resourceService) AddAttachment(ctx context.Context, resourceUUID, fileName string, file io.Reader, size int64) (*models.Attachment, error) {
	// The resource must exist before anything lands in object storage.
	if _, err := s.resourceRepo.GetByUUID(ctx, resourceUUID); err != nil {
		return nil, err
	}

	objectName, fileURL, err := s.storage.UploadFile(ctx, resourceUUID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	attachment := &models.Attachment{
		ResourceUUID: resourceUUID,
		FileURL:      fileURL,
	}

	err = s.attachmentRepo.Create(ctx, attachment)
	if err != nil {
		// Compensating delete so no orphan object stays behind.
		if delErr := s.storage.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Warning: failed to clean up object %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}

	return attachment, nil
}

func (s *resourceService) DeleteAttachment(ctx context.Context, attachmentUUID string) error {
	attachment, err := s.attachmentRepo.GetByUUID(ctx, attachmentUUID)
	if err != nil {
		return err
	}

	if objectName, ok := s.objectNameFromURL(attachment.FileURL); ok {
		if err := s.storage.DeleteFile(ctx, objectName); err != nil {
			log.Printf("Warning: failed to delete object %s: %v", objectName, err)
		}
	}

	return s.attachmentRepo.Delete(ctx, attachmentUUID)
}

// objectNameFromURL strips the public endpoint and bucket prefix from a
// stored attachment URL.
func (s *resourceService) objectNameFromURL(fileURL string) (string, bool) {
	prefix := fmt.Sprintf("%s/%s/", s.cfg.MinIO.PublicURL, s.cfg.MinIO.BucketName)
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(fileURL, prefix), true
}

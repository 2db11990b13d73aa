package service

import (
	"context"
	"time"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

type CreateStatusHistoryRequest struct {
	ResourceUUID string    `json:"ressource_uuid" validate:"required,uuid4"`
	PreviewState string    `json:"preview_state" validate:"required,uuid4"`
	NewState     string    `json:"new_state" validate:"required,uuid4"`
	ChangedAt    time.Time `json:"changed_at"`
}

// StatusHistoryService exposes the audit trail of resource status
// transitions. Rows are append-only: there is no replace or partial update
// on purpose, because a mutable audit log is no audit log.
type StatusHistoryService interface {
	CreateHistory(ctx context.Context, req CreateStatusHistoryRequest) (*models.ResourceStatusHistory, error)
	GetAll(ctx context.Context) ([]models.ResourceStatusHistory, error)
	GetByUUID(ctx context.Context, historyUUID string) (*models.ResourceStatusHistory, error)
	GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.ResourceStatusHistory, error)
	// DeleteHistory reports whether an entry was removed.
	DeleteHistory(ctx context.Context, historyUUID string) (bool, error)
}

type statusHistoryService struct {
	historyRepo  repository.StatusHistoryRepository
	resourceRepo repository.ResourceRepository
	statusRepo   repository.ResourceStatusRepository
}

func NewStatusHistoryService(historyRepo repository.StatusHistoryRepository, resourceRepo repository.ResourceRepository, statusRepo repository.ResourceStatusRepository) StatusHistoryService {
	return &statusHistoryService{
		historyRepo:  historyRepo,
		resourceRepo: resourceRepo,
		statusRepo:   statusRepo,
	}
}

// CreateHistory validates each referenced row before the write, so a
// failure names the reference that is missing.
func (s *statusHistoryService) CreateHistory(ctx context.Context, req CreateStatusHistoryRequest) (*models.ResourceStatusHistory, error) {
	if _, err := s.resourceRepo.GetByUUID(ctx, req.ResourceUUID); err != nil {
		return nil, err
	}

	if _, err := s.statusRepo.GetByUUID(ctx, req.PreviewState); err != nil {
		return nil, err
	}

	if _, err := s.statusRepo.GetByUUID(ctx, req.NewState); err != nil {
		return nil, err
	}

	history := &models.ResourceStatusHistory{
		ChangedAt:    req.ChangedAt,
		PreviewState: req.PreviewState,
		NewState:     req.NewState,
		ResourceUUID: req.ResourceUUID,
	}

	err := s.historyRepo.Create(ctx, history)
	if err != nil {
		return nil, err
	}

	return history, nil
}

func (s *statusHistoryService) GetAll(ctx context.Context) ([]models.ResourceStatusHistory, error) {
	return s.historyRepo.GetAll(ctx)
}

func (s *statusHistoryService) GetByUUID(ctx context.Context, historyUUID string) (*models.ResourceStatusHistory, error) {
	return s.historyRepo.GetByUUID(ctx, historyUUID)
}

func (s *statusHistoryService) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.ResourceStatusHistory, error) {
	return s.historyRepo.GetByResourceUUID(ctx, resourceUUID)
}

func (s *statusHistoryService) DeleteHistory(ctx context.Context, historyUUID string) (bool, error) {
	return s.historyRepo.Delete(ctx, historyUUID)
}

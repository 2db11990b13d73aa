package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByUUID(ctx context.Context, commentUUID string) (*models.Comment, error) {
	args := m.Called(ctx, commentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.Comment, error) {
	args := m.Called(ctx, resourceUUID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, commentUUID string) error {
	args := m.Called(ctx, commentUUID)
	return args.Error(0)
}

type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) GetByUUID(ctx context.Context, resourceUUID string) (*models.Resource, error) {
	args := m.Called(ctx, resourceUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceRepository) GetAll(ctx context.Context) ([]models.Resource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockResourceRepository) GetByUserUUID(ctx context.Context, userUUID string) ([]models.Resource, error) {
	args := m.Called(ctx, userUUID)
	return args.Get(0).([]models.Resource), args.Error(1)
}

func (m *MockResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

func (m *MockResourceRepository) Delete(ctx context.Context, resourceUUID string) error {
	args := m.Called(ctx, resourceUUID)
	return args.Error(0)
}

func (m *MockResourceRepository) UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error) {
	args := m.Called(ctx, resourceUUID, newStatusUUID, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

type MockStatusHistoryRepository struct {
	mock.Mock
}

func (m *MockStatusHistoryRepository) Create(ctx context.Context, history *models.ResourceStatusHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockStatusHistoryRepository) GetByUUID(ctx context.Context, historyUUID string) (*models.ResourceStatusHistory, error) {
	args := m.Called(ctx, historyUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResourceStatusHistory), args.Error(1)
}

func (m *MockStatusHistoryRepository) GetAll(ctx context.Context) ([]models.ResourceStatusHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ResourceStatusHistory), args.Error(1)
}

func (m *MockStatusHistoryRepository) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.ResourceStatusHistory, error) {
	args := m.Called(ctx, resourceUUID)
	return args.Get(0).([]models.ResourceStatusHistory), args.Error(1)
}

func (m *MockStatusHistoryRepository) Delete(ctx context.Context, historyUUID string) (bool, error) {
	args := m.Called(ctx, historyUUID)
	return args.Bool(0), args.Error(1)
}

type MockResourceStatusRepository struct {
	mock.Mock
}

func (m *MockResourceStatusRepository) Create(ctx context.Context, status *models.ResourceStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockResourceStatusRepository) GetByUUID(ctx context.Context, statusUUID string) (*models.ResourceStatus, error) {
	args := m.Called(ctx, statusUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResourceStatus), args.Error(1)
}

func (m *MockResourceStatusRepository) GetAll(ctx context.Context) ([]models.ResourceStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.ResourceStatus), args.Error(1)
}

func (m *MockResourceStatusRepository) Update(ctx context.Context, status *models.ResourceStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockResourceStatusRepository) Delete(ctx context.Context, statusUUID string) error {
	args := m.Called(ctx, statusUUID)
	return args.Error(0)
}

type MockSharingSessionRepository struct {
	mock.Mock
}

func (m *MockSharingSessionRepository) Create(ctx context.Context, session *models.SharingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSharingSessionRepository) GetByUUID(ctx context.Context, sessionUUID string) (*models.SharingSession, error) {
	args := m.Called(ctx, sessionUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SharingSession), args.Error(1)
}

func (m *MockSharingSessionRepository) GetAll(ctx context.Context) ([]models.SharingSession, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SharingSession), args.Error(1)
}

func (m *MockSharingSessionRepository) Update(ctx context.Context, session *models.SharingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSharingSessionRepository) Delete(ctx context.Context, sessionUUID string) error {
	args := m.Called(ctx, sessionUUID)
	return args.Error(0)
}

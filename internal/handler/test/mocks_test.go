package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

// MockAssociationService covers all three association endpoints; the
// have/refer/reference services differ only in their type parameters.
type MockAssociationService[L any, R any] struct {
	mock.Mock
}

func (m *MockAssociationService[L, R]) Create(ctx context.Context, leftID, rightID string) error {
	args := m.Called(ctx, leftID, rightID)
	return args.Error(0)
}

func (m *MockAssociationService[L, R]) Delete(ctx context.Context, leftID, rightID string) (bool, error) {
	args := m.Called(ctx, leftID, rightID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssociationService[L, R]) RightsByLeft(ctx context.Context, leftID string) ([]R, error) {
	args := m.Called(ctx, leftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]R), args.Error(1)
}

func (m *MockAssociationService[L, R]) LeftsByRight(ctx context.Context, rightID string) ([]L, error) {
	args := m.Called(ctx, rightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]L), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) GetByUUID(ctx context.Context, tagUUID string) (*models.Tag, error) {
	args := m.Called(ctx, tagUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, tagUUID string) error {
	args := m.Called(ctx, tagUUID)
	return args.Error(0)
}

type MockResourceService struct {
	mock.Mock
}

func (m *MockResourceService) CreateResource(ctx context.Context, req service.CreateResourceRequest) (*models.Resource, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) UpdateResource(ctx context.Context, req service.UpdateResourceRequest) (*models.Resource, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) PatchResource(ctx context.Context, req service.PatchResourceRequest) (*models.Resource, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) DeleteResource(ctx context.Context, resourceUUID string) error {
	args := m.Called(ctx, resourceUUID)
	return args.Error(0)
}

func (m *MockResourceService) UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error) {
	args := m.Called(ctx, resourceUUID, newStatusUUID, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (m *MockResourceService) AddAttachment(ctx context.Context, resourceUUID, fileName string, file io.Reader, size int64) (*models.Attachment, error) {
	args := m.Called(ctx, resourceUUID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attachment), args.Error(1)
}

func (m *MockResourceService) DeleteAttachment(ctx context.Context, attachmentUUID string) error {
	args := m.Called(ctx, attachmentUUID)
	return args.Error(0)
}

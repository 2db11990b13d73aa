package service

import (
	"context"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

// AssociationService is the business layer over one junction table,
// parameterized the same way as the repository. All three associations
// (have, refer, reference) share these semantics: duplicate pairs are a
// conflict, deleting a missing pair is a non-error "false", reads return
// the full entities on the other side of the join.
type AssociationService[L any, R any] interface {
	Create(ctx context.Context, leftID, rightID string) error
	Delete(ctx context.Context, leftID, rightID string) (bool, error)
	RightsByLeft(ctx context.Context, leftID string) ([]R, error)
	LeftsByRight(ctx context.Context, rightID string) ([]L, error)
}

type associationService[L any, R any] struct {
	repo repository.AssociationRepository[L, R]
}

func NewAssociationService[L any, R any](repo repository.AssociationRepository[L, R]) AssociationService[L, R] {
	return &associationService[L, R]{repo: repo}
}

func (s *associationService[L, R]) Create(ctx context.Context, leftID, rightID string) error {
	return s.repo.CreatePair(ctx, leftID, rightID)
}

func (s *associationService[L, R]) Delete(ctx context.Context, leftID, rightID string) (bool, error) {
	return s.repo.DeletePair(ctx, leftID, rightID)
}

func (s *associationService[L, R]) RightsByLeft(ctx context.Context, leftID string) ([]R, error) {
	return s.repo.RightsByLeft(ctx, leftID)
}

func (s *associationService[L, R]) LeftsByRight(ctx context.Context, rightID string) ([]L, error) {
	return s.repo.LeftsByRight(ctx, rightID)
}

package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
)

const maxCommentLength = 255

type CreateCommentRequest struct {
	Content      string  `json:"content" validate:"required"`
	ParentUUID   *string `json:"parent_uuid" validate:"omitempty,uuid4"`
	UserUUID     string  `json:"user_uuid" validate:"required,uuid4"`
	ResourceUUID string  `json:"ressource_uuid" validate:"required,uuid4"`
}

type UpdateCommentRequest struct {
	CommentUUID string `json:"comment_uuid"`
	Content     string `json:"content" validate:"required"`
	IsReported  *bool  `json:"is_reported"`
}

// PatchCommentRequest carries pointer fields: only the ones present in the
// request body are written.
type PatchCommentRequest struct {
	CommentUUID string  `json:"comment_uuid"`
	Content     *string `json:"content"`
	IsReported  *bool   `json:"is_reported"`
}

type CommentService interface {
	CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error)
	UpdateComment(ctx context.Context, req UpdateCommentRequest) (*models.Comment, error)
	PatchComment(ctx context.Context, req PatchCommentRequest) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentUUID string) error
}

type commentService struct {
	commentRepo  repository.CommentRepository
	resourceRepo repository.ResourceRepository
}

func NewCommentService(commentRepo repository.CommentRepository, resourceRepo repository.ResourceRepository) CommentService {
	return &commentService{
		commentRepo:  commentRepo,
		resourceRepo: resourceRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*models.Comment, error) {
	if err := validateCommentContent(req.Content); err != nil {
		return nil, err
	}

	if _, err := s.resourceRepo.GetByUUID(ctx, req.ResourceUUID); err != nil {
		return nil, err
	}

	if req.ParentUUID != nil {
		parent, err := s.commentRepo.GetByUUID(ctx, *req.ParentUUID)
		if err != nil {
			return nil, err
		}

		// A reply stays on the thread of its parent.
		if parent.ResourceUUID != req.ResourceUUID {
			return nil, &ValidationError{Msg: "Parent comment belongs to a different resource"}
		}

		if parent.IsReported {
			return nil, &ValidationError{Msg: "Cannot reply to a reported comment"}
		}
	}

	comment := &models.Comment{
		Content:      strings.TrimSpace(req.Content),
		ParentUUID:   req.ParentUUID,
		UserUUID:     req.UserUUID,
		ResourceUUID: req.ResourceUUID,
	}

	err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, req UpdateCommentRequest) (*models.Comment, error) {
	if err := validateCommentContent(req.Content); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByUUID(ctx, req.CommentUUID)
	if err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(req.Content)
	if req.IsReported != nil {
		comment.IsReported = *req.IsReported
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) PatchComment(ctx context.Context, req PatchCommentRequest) (*models.Comment, error) {
	if req.Content != nil {
		if err := validateCommentContent(*req.Content); err != nil {
			return nil, err
		}
	}

	comment, err := s.commentRepo.GetByUUID(ctx, req.CommentUUID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = strings.TrimSpace(*req.Content)
	}
	if req.IsReported != nil {
		comment.IsReported = *req.IsReported
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentUUID string) error {
	return s.commentRepo.Delete(ctx, commentUUID)
}

func validateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return &ValidationError{Msg: "Comment content must not be empty"}
	}
	// The column is VARCHAR(255): the limit is characters, not bytes.
	if utf8.RuneCountInString(trimmed) > maxCommentLength {
		return &ValidationError{Msg: "Comment content must not exceed 255 characters"}
	}
	return nil
}

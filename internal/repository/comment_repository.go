package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.CommentUUID = uuid.New().String()
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_uuid, content, is_reported, parent_uuid, user_uuid, ressource_uuid, created_at)
		VALUES (:comment_uuid, :content, :is_reported, :parent_uuid, :user_uuid, :ressource_uuid, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		if translated := translatePQError(err, "Comment", ""); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByUUID(ctx context.Context, commentUUID string) (*models.Comment, error) {
	var comment models.Comment

	query := `SELECT * FROM comments WHERE comment_uuid = $1`

	err := r.db.GetContext(ctx, &comment, query, commentUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Comment", ID: commentUUID}
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT * FROM comments WHERE ressource_uuid = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &comments, query, resourceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments SET content = :content, is_reported = :is_reported
		WHERE comment_uuid = :comment_uuid
	`

	result, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Comment", ID: comment.CommentUUID})
}

func (r *commentRepository) Delete(ctx context.Context, commentUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_uuid = $1`, commentUUID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Comment", ID: commentUUID})
}

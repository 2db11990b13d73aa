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

type attachmentRepository struct {
	db *sqlx.DB
}

func NewAttachmentRepository(db *sqlx.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, attachment *models.Attachment) error {
	if attachment.AttachmentUUID == "" {
		attachment.AttachmentUUID = uuid.New().String()
	}

	if attachment.CreatedAt.IsZero() {
		attachment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO attachments (attachment_uuid, ressource_uuid, file_url, created_at)
		VALUES (:attachment_uuid, :ressource_uuid, :file_url, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, attachment)
	if err != nil {
		if translated := translatePQError(err, "Attachment", ""); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	return nil
}

func (r *attachmentRepository) GetByUUID(ctx context.Context, attachmentUUID string) (*models.Attachment, error) {
	var attachment models.Attachment

	query := `SELECT * FROM attachments WHERE attachment_uuid = $1`

	err := r.db.GetContext(ctx, &attachment, query, attachmentUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Attachment", ID: attachmentUUID}
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return &attachment, nil
}

func (r *attachmentRepository) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.Attachment, error) {
	var attachments []models.Attachment

	query := `SELECT * FROM attachments WHERE ressource_uuid = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &attachments, query, resourceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	if attachments == nil {
		attachments = []models.Attachment{}
	}

	return attachments, nil
}

func (r *attachmentRepository) Delete(ctx context.Context, attachmentUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE attachment_uuid = $1`, attachmentUUID)
	if err != nil {
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Attachment", ID: attachmentUUID})
}

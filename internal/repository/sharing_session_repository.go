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

type sharingSessionRepository struct {
	db *sqlx.DB
}

func NewSharingSessionRepository(db *sqlx.DB) SharingSessionRepository {
	return &sharingSessionRepository{db: db}
}

func (r *sharingSessionRepository) Create(ctx context.Context, session *models.SharingSession) error {
	session.SharingSessionUUID = uuid.New().String()
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now

	query := `
		INSERT INTO sharing_sessions
		(sharing_session_uuid, title, description, start_datetime, end_datetime, user_uuid, created_at, updated_at)
		VALUES
		(:sharing_session_uuid, :title, :description, :start_datetime, :end_datetime, :user_uuid, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		if translated := translatePQError(err, "Sharing session", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create sharing session: %w", err)
	}

	return nil
}

func (r *sharingSessionRepository) GetByUUID(ctx context.Context, sessionUUID string) (*models.SharingSession, error) {
	var session models.SharingSession

	query := `SELECT * FROM sharing_sessions WHERE sharing_session_uuid = $1`

	err := r.db.GetContext(ctx, &session, query, sessionUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Sharing session", ID: sessionUUID}
		}
		return nil, fmt.Errorf("failed to get sharing session: %w", err)
	}

	return &session, nil
}

func (r *sharingSessionRepository) GetAll(ctx context.Context) ([]models.SharingSession, error) {
	var sessions []models.SharingSession

	query := `SELECT * FROM sharing_sessions ORDER BY start_datetime DESC`

	err := r.db.SelectContext(ctx, &sessions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sharing sessions: %w", err)
	}

	if sessions == nil {
		sessions = []models.SharingSession{}
	}

	return sessions, nil
}

func (r *sharingSessionRepository) Update(ctx context.Context, session *models.SharingSession) error {
	query := `
		UPDATE sharing_sessions SET
			title = :title,
			description = :description,
			start_datetime = :start_datetime,
			end_datetime = :end_datetime,
			updated_at = :updated_at
		WHERE sharing_session_uuid = :sharing_session_uuid
	`

	session.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, session)
	if err != nil {
		if translated := translatePQError(err, "Sharing session", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update sharing session: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Sharing session", ID: session.SharingSessionUUID})
}

func (r *sharingSessionRepository) Delete(ctx context.Context, sessionUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sharing_sessions WHERE sharing_session_uuid = $1`, sessionUUID)
	if err != nil {
		return fmt.Errorf("failed to delete sharing session: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Sharing session", ID: sessionUUID})
}

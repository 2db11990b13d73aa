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

type statusHistoryRepository struct {
	db *sqlx.DB
}

func NewStatusHistoryRepository(db *sqlx.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

func (r *statusHistoryRepository) Create(ctx context.Context, history *models.ResourceStatusHistory) error {
	history.HistoryUUID = uuid.New().String()
	if history.ChangedAt.IsZero() {
		history.ChangedAt = time.Now()
	}

	query := `
		INSERT INTO ressource_status_history (history_uuid, changed_at, preview_state, new_state, ressource_uuid)
		VALUES (:history_uuid, :changed_at, :preview_state, :new_state, :ressource_uuid)
	`

	_, err := r.db.NamedExecContext(ctx, query, history)
	if err != nil {
		if translated := translatePQError(err, "Status history", ""); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create status history: %w", err)
	}

	return nil
}

func (r *statusHistoryRepository) GetByUUID(ctx context.Context, historyUUID string) (*models.ResourceStatusHistory, error) {
	var history models.ResourceStatusHistory

	query := `SELECT * FROM ressource_status_history WHERE history_uuid = $1`

	err := r.db.GetContext(ctx, &history, query, historyUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Status history", ID: historyUUID}
		}
		return nil, fmt.Errorf("failed to get status history: %w", err)
	}

	return &history, nil
}

func (r *statusHistoryRepository) GetAll(ctx context.Context) ([]models.ResourceStatusHistory, error) {
	var entries []models.ResourceStatusHistory

	query := `SELECT * FROM ressource_status_history ORDER BY changed_at DESC`

	err := r.db.SelectContext(ctx, &entries, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}

	if entries == nil {
		entries = []models.ResourceStatusHistory{}
	}

	return entries, nil
}

func (r *statusHistoryRepository) GetByResourceUUID(ctx context.Context, resourceUUID string) ([]models.ResourceStatusHistory, error) {
	var entries []models.ResourceStatusHistory

	query := `SELECT * FROM ressource_status_history WHERE ressource_uuid = $1 ORDER BY changed_at DESC`

	err := r.db.SelectContext(ctx, &entries, query, resourceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource status history: %w", err)
	}

	if entries == nil {
		entries = []models.ResourceStatusHistory{}
	}

	return entries, nil
}

// Delete reports whether a row was removed; deleting an absent entry is a
// normal outcome.
func (r *statusHistoryRepository) Delete(ctx context.Context, historyUUID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ressource_status_history WHERE history_uuid = $1`, historyUUID)
	if err != nil {
		return false, fmt.Errorf("failed to delete status history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

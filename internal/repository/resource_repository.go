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

type resourceRepository struct {
	db *sqlx.DB
}

func NewResourceRepository(db *sqlx.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	if resource.ResourceUUID == "" {
		resource.ResourceUUID = uuid.New().String()
	}

	now := time.Now()
	resource.CreatedAt = now
	resource.UpdatedAt = now

	query := `
		INSERT INTO ressources
		(ressource_uuid, title, content, summary, is_reported, user_uuid, updated_by, ressource_type_uuid, ressource_status_uuid, created_at, updated_at)
		VALUES
		(:ressource_uuid, :title, :content, :summary, :is_reported, :user_uuid, :updated_by, :ressource_type_uuid, :ressource_status_uuid, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, resource)
	if err != nil {
		if translated := translatePQError(err, "Resource", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create resource: %w", err)
	}

	return nil
}

func (r *resourceRepository) GetByUUID(ctx context.Context, resourceUUID string) (*models.Resource, error) {
	var resource models.Resource

	query := `SELECT * FROM ressources WHERE ressource_uuid = $1`

	err := r.db.GetContext(ctx, &resource, query, resourceUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Resource", ID: resourceUUID}
		}
		return nil, fmt.Errorf("failed to get resource: %w", err)
	}

	return &resource, nil
}

func (r *resourceRepository) GetAll(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource

	query := `SELECT * FROM ressources ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &resources, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	return resources, nil
}

func (r *resourceRepository) GetByUserUUID(ctx context.Context, userUUID string) ([]models.Resource, error) {
	var resources []models.Resource

	query := `SELECT * FROM ressources WHERE user_uuid = $1 ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &resources, query, userUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user resources: %w", err)
	}

	if resources == nil {
		resources = []models.Resource{}
	}

	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	query := `
		UPDATE ressources SET
			title = :title,
			content = :content,
			summary = :summary,
			is_reported = :is_reported,
			updated_by = :updated_by,
			ressource_type_uuid = :ressource_type_uuid,
			updated_at = :updated_at
		WHERE ressource_uuid = :ressource_uuid
	`

	resource.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, resource)
	if err != nil {
		if translated := translatePQError(err, "Resource", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update resource: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource", ID: resource.ResourceUUID})
}

func (r *resourceRepository) Delete(ctx context.Context, resourceUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ressources WHERE ressource_uuid = $1`, resourceUUID)
	if err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource", ID: resourceUUID})
}

// UpdateStatus changes the current status of a resource inside a single
// transaction: the resource row is locked, the target status is checked,
// the column is updated and one history row is appended. The row lock
// serializes concurrent transitions so no history entry is lost. A no-op
// change (same status) updates nothing and writes no history.
func (r *resourceRepository) UpdateStatus(ctx context.Context, resourceUUID, newStatusUUID, updatedBy string) (*models.Resource, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var resource models.Resource
	err = tx.GetContext(ctx, &resource, `SELECT * FROM ressources WHERE ressource_uuid = $1 FOR UPDATE`, resourceUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Resource", ID: resourceUUID}
		}
		return nil, fmt.Errorf("failed to lock resource: %w", err)
	}

	var statusExists bool
	err = tx.GetContext(ctx, &statusExists, `SELECT EXISTS (SELECT 1 FROM ressource_status WHERE ressource_status_uuid = $1)`, newStatusUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to check resource status: %w", err)
	}
	if !statusExists {
		return nil, &NotFoundError{Entity: "Resource status", ID: newStatusUUID}
	}

	previousStatusUUID := resource.ResourceStatusUUID
	if previousStatusUUID == newStatusUUID {
		// Nothing changed; the audit trail only records effective
		// transitions.
		return &resource, nil
	}

	// updated_by stays NULL for calls without an authenticated user.
	var updater interface{}
	if updatedBy != "" {
		updater = updatedBy
	}

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		UPDATE ressources SET ressource_status_uuid = $1, updated_by = $2, updated_at = $3
		WHERE ressource_uuid = $4
	`, newStatusUUID, updater, now, resourceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to update resource status: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ressource_status_history (history_uuid, changed_at, preview_state, new_state, ressource_uuid)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.New().String(), now, previousStatusUUID, newStatusUUID, resourceUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to append status history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	resource.ResourceStatusUUID = newStatusUUID
	if updatedBy != "" {
		resource.UpdatedBy = &updatedBy
	}
	resource.UpdatedAt = now

	return &resource, nil
}

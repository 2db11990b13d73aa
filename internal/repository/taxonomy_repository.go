package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

// Resource types, resource statuses and tags are plain name-unique lookup
// tables; their repositories share the same shape.

type resourceTypeRepository struct {
	db *sqlx.DB
}

func NewResourceTypeRepository(db *sqlx.DB) ResourceTypeRepository {
	return &resourceTypeRepository{db: db}
}

func (r *resourceTypeRepository) Create(ctx context.Context, resourceType *models.ResourceType) error {
	resourceType.ResourceTypeUUID = uuid.New().String()

	query := `
		INSERT INTO ressource_types (ressource_type_uuid, type_name)
		VALUES (:ressource_type_uuid, :type_name)
	`

	_, err := r.db.NamedExecContext(ctx, query, resourceType)
	if err != nil {
		if translated := translatePQError(err, "Resource type", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create resource type: %w", err)
	}

	return nil
}

func (r *resourceTypeRepository) GetByUUID(ctx context.Context, typeUUID string) (*models.ResourceType, error) {
	var resourceType models.ResourceType

	query := `SELECT * FROM ressource_types WHERE ressource_type_uuid = $1`

	err := r.db.GetContext(ctx, &resourceType, query, typeUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Resource type", ID: typeUUID}
		}
		return nil, fmt.Errorf("failed to get resource type: %w", err)
	}

	return &resourceType, nil
}

func (r *resourceTypeRepository) GetAll(ctx context.Context) ([]models.ResourceType, error) {
	var types []models.ResourceType

	query := `SELECT * FROM ressource_types ORDER BY type_name`

	err := r.db.SelectContext(ctx, &types, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource types: %w", err)
	}

	if types == nil {
		types = []models.ResourceType{}
	}

	return types, nil
}

func (r *resourceTypeRepository) Update(ctx context.Context, resourceType *models.ResourceType) error {
	query := `UPDATE ressource_types SET type_name = :type_name WHERE ressource_type_uuid = :ressource_type_uuid`

	result, err := r.db.NamedExecContext(ctx, query, resourceType)
	if err != nil {
		if translated := translatePQError(err, "Resource type", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update resource type: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource type", ID: resourceType.ResourceTypeUUID})
}

func (r *resourceTypeRepository) Delete(ctx context.Context, typeUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ressource_types WHERE ressource_type_uuid = $1`, typeUUID)
	if err != nil {
		return fmt.Errorf("failed to delete resource type: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource type", ID: typeUUID})
}

type resourceStatusRepository struct {
	db *sqlx.DB
}

func NewResourceStatusRepository(db *sqlx.DB) ResourceStatusRepository {
	return &resourceStatusRepository{db: db}
}

func (r *resourceStatusRepository) Create(ctx context.Context, status *models.ResourceStatus) error {
	status.ResourceStatusUUID = uuid.New().String()

	query := `
		INSERT INTO ressource_status (ressource_status_uuid, name)
		VALUES (:ressource_status_uuid, :name)
	`

	_, err := r.db.NamedExecContext(ctx, query, status)
	if err != nil {
		if translated := translatePQError(err, "Resource status", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create resource status: %w", err)
	}

	return nil
}

func (r *resourceStatusRepository) GetByUUID(ctx context.Context, statusUUID string) (*models.ResourceStatus, error) {
	var status models.ResourceStatus

	query := `SELECT * FROM ressource_status WHERE ressource_status_uuid = $1`

	err := r.db.GetContext(ctx, &status, query, statusUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Resource status", ID: statusUUID}
		}
		return nil, fmt.Errorf("failed to get resource status: %w", err)
	}

	return &status, nil
}

func (r *resourceStatusRepository) GetAll(ctx context.Context) ([]models.ResourceStatus, error) {
	var statuses []models.ResourceStatus

	query := `SELECT * FROM ressource_status ORDER BY name`

	err := r.db.SelectContext(ctx, &statuses, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list resource statuses: %w", err)
	}

	if statuses == nil {
		statuses = []models.ResourceStatus{}
	}

	return statuses, nil
}

func (r *resourceStatusRepository) Update(ctx context.Context, status *models.ResourceStatus) error {
	query := `UPDATE ressource_status SET name = :name WHERE ressource_status_uuid = :ressource_status_uuid`

	result, err := r.db.NamedExecContext(ctx, query, status)
	if err != nil {
		if translated := translatePQError(err, "Resource status", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update resource status: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource status", ID: status.ResourceStatusUUID})
}

func (r *resourceStatusRepository) Delete(ctx context.Context, statusUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ressource_status WHERE ressource_status_uuid = $1`, statusUUID)
	if err != nil {
		return fmt.Errorf("failed to delete resource status: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Resource status", ID: statusUUID})
}

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	tag.TagUUID = uuid.New().String()

	query := `INSERT INTO tags (tag_uuid, tag_title) VALUES (:tag_uuid, :tag_title)`

	_, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		if translated := translatePQError(err, "Tag", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create tag: %w", err)
	}

	return nil
}

func (r *tagRepository) GetByUUID(ctx context.Context, tagUUID string) (*models.Tag, error) {
	var tag models.Tag

	query := `SELECT * FROM tags WHERE tag_uuid = $1`

	err := r.db.GetContext(ctx, &tag, query, tagUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Tag", ID: tagUUID}
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag

	query := `SELECT * FROM tags ORDER BY tag_title`

	err := r.db.SelectContext(ctx, &tags, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	if tags == nil {
		tags = []models.Tag{}
	}

	return tags, nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	query := `UPDATE tags SET tag_title = :tag_title WHERE tag_uuid = :tag_uuid`

	result, err := r.db.NamedExecContext(ctx, query, tag)
	if err != nil {
		if translated := translatePQError(err, "Tag", "title"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update tag: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Tag", ID: tag.TagUUID})
}

func (r *tagRepository) Delete(ctx context.Context, tagUUID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE tag_uuid = $1`, tagUUID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return requireRowsAffected(result, &NotFoundError{Entity: "Tag", ID: tagUUID})
}

// requireRowsAffected converts a zero-row write into the given not-found
// error.
func requireRowsAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

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

type roleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	role.RoleUUID = uuid.New().String()
	role.CreatedAt = time.Now()

	query := `
		INSERT INTO roles (role_uuid, role_name, created_at)
		VALUES (:role_uuid, :role_name, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, role)
	if err != nil {
		if translated := translatePQError(err, "Role", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	return nil
}

func (r *roleRepository) GetByUUID(ctx context.Context, roleUUID string) (*models.Role, error) {
	var role models.Role

	query := `SELECT * FROM roles WHERE role_uuid = $1`

	err := r.db.GetContext(ctx, &role, query, roleUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "Role", ID: roleUUID}
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &role, nil
}

func (r *roleRepository) GetAll(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role

	query := `SELECT * FROM roles ORDER BY role_name`

	err := r.db.SelectContext(ctx, &roles, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	if roles == nil {
		roles = []models.Role{}
	}

	return roles, nil
}

func (r *roleRepository) Update(ctx context.Context, role *models.Role) error {
	query := `UPDATE roles SET role_name = :role_name WHERE role_uuid = :role_uuid`

	result, err := r.db.NamedExecContext(ctx, query, role)
	if err != nil {
		if translated := translatePQError(err, "Role", "name"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "Role", ID: role.RoleUUID}
	}

	return nil
}

func (r *roleRepository) Delete(ctx context.Context, roleUUID string) error {
	query := `DELETE FROM roles WHERE role_uuid = $1`

	result, err := r.db.ExecContext(ctx, query, roleUUID)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "Role", ID: roleUUID}
	}

	return nil
}

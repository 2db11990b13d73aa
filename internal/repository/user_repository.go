package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.UserUUID = uuid.New().String()
	user.PasswordHash = string(hashedPassword)
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (user_uuid, username, email, password_hash, is_active, role_uuid, created_at, updated_at)
		VALUES (:user_uuid, :username, :email, :password_hash, :is_active, :role_uuid, :created_at, :updated_at)
	`

	// The unique indexes on username and email are the duplicate guard;
	// a separate pre-check would leave a race window between check and
	// insert.
	_, err = r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if translated := translatePQError(err, "User", "username"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_uuid = $1`

	err := r.db.GetContext(ctx, &user, query, userUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "User", ID: userUUID}
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "User", ID: username}
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	query := `SELECT * FROM users ORDER BY created_at`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

func (r *userRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user, err := r.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("invalid password")
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = :username, email = :email, is_active = :is_active, role_uuid = :role_uuid, updated_at = :updated_at
		WHERE user_uuid = :user_uuid
	`

	user.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if translated := translatePQError(err, "User", "username"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "User", ID: user.UserUUID}
	}

	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userUUID string) error {
	query := `DELETE FROM users WHERE user_uuid = $1`

	result, err := r.db.ExecContext(ctx, query, userUUID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return &NotFoundError{Entity: "User", ID: userUUID}
	}

	return nil
}

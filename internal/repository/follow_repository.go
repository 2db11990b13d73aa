package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/models"
)

// Follows are a junction between users and users; both ends of the pair
// live in the same table, so this repository stays concrete instead of
// reusing the generic association one.
type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, followedUUID, followerUUID string) error {
	if followedUUID == followerUUID {
		return &InvalidError{Msg: "A user cannot follow themselves"}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, userUUID := range []string{followedUUID, followerUUID} {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`, userUUID); err != nil {
			return fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return &NotFoundError{Entity: "User", ID: userUUID}
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO follows (user_uuid, user_uuid_follower, created_at)
		VALUES ($1, $2, $3)
	`, followedUUID, followerUUID, time.Now())
	if err != nil {
		if translated := translatePQError(err, "Follow", "pair"); translated != err {
			return translated
		}
		return fmt.Errorf("failed to create follow: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit follow: %w", err)
	}

	return nil
}

func (r *followRepository) Delete(ctx context.Context, followedUUID, followerUUID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM follows WHERE user_uuid = $1 AND user_uuid_follower = $2
	`, followedUUID, followerUUID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted rows: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, followedUUID string) ([]models.User, error) {
	var users []models.User

	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.user_uuid_follower = u.user_uuid
		WHERE f.user_uuid = $1
	`

	if err := r.db.SelectContext(ctx, &users, query, followedUUID); err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	if len(users) == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`, followedUUID); err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return nil, &NotFoundError{Entity: "User", ID: followedUUID}
		}
		return []models.User{}, nil
	}

	return users, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, followerUUID string) ([]models.User, error) {
	var users []models.User

	query := `
		SELECT u.* FROM users u
		JOIN follows f ON f.user_uuid = u.user_uuid
		WHERE f.user_uuid_follower = $1
	`

	if err := r.db.SelectContext(ctx, &users, query, followerUUID); err != nil {
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}

	if len(users) == 0 {
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`, followerUUID); err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return nil, &NotFoundError{Entity: "User", ID: followerUUID}
		}
		return []models.User{}, nil
	}

	return users, nil
}

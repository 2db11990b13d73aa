package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Create(t *testing.T) {
	ctx := context.Background()
	followedUUID := uuid.New().String()
	followerUUID := uuid.New().String()

	userExistsQuery := `SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`
	insertQuery := `INSERT INTO follows (user_uuid, user_uuid_follower, created_at) VALUES ($1, $2, $3)`

	t.Run("Create a follow", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(userExistsQuery).WithArgs(followedUUID).WillReturnRows(existsRow(true))
		mock.ExpectQuery(userExistsQuery).WithArgs(followerUUID).WillReturnRows(existsRow(true))
		mock.ExpectExec(insertQuery).
			WithArgs(followedUUID, followerUUID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, followedUUID, followerUUID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Self-follow is rejected before any query", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		err := repo.Create(ctx, followedUUID, followedUUID)

		assert.Error(t, err)
		assert.True(t, IsInvalid(err))
		assert.Contains(t, err.Error(), "cannot follow themselves")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown followed user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(userExistsQuery).WithArgs(followedUUID).WillReturnRows(existsRow(false))
		mock.ExpectRollback()

		err := repo.Create(ctx, followedUUID, followerUUID)

		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), followedUUID)
	})

	t.Run("Duplicate follow is a conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(userExistsQuery).WithArgs(followedUUID).WillReturnRows(existsRow(true))
		mock.ExpectQuery(userExistsQuery).WithArgs(followerUUID).WillReturnRows(existsRow(true))
		mock.ExpectExec(insertQuery).
			WithArgs(followedUUID, followerUUID, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "follows_pkey"})
		mock.ExpectRollback()

		err := repo.Create(ctx, followedUUID, followerUUID)

		assert.True(t, IsConflict(err))
	})
}

func TestFollowRepository_Delete(t *testing.T) {
	ctx := context.Background()
	followedUUID := uuid.New().String()
	followerUUID := uuid.New().String()

	deleteQuery := `DELETE FROM follows WHERE user_uuid = $1 AND user_uuid_follower = $2`

	t.Run("Delete an existing follow", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectExec(deleteQuery).
			WithArgs(followedUUID, followerUUID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(ctx, followedUUID, followerUUID)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Delete a missing follow returns false", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectExec(deleteQuery).
			WithArgs(followedUUID, followerUUID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(ctx, followedUUID, followerUUID)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestFollowRepository_GetFollowers(t *testing.T) {
	ctx := context.Background()
	followedUUID := uuid.New().String()

	followersQuery := `SELECT u.* FROM users u JOIN follows f ON f.user_uuid_follower = u.user_uuid WHERE f.user_uuid = $1`

	t.Run("Followers of a user", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		rows := userRows().AddRow(
			uuid.New().String(), "bob", "bob@example.com", "hashed",
			true, uuid.New().String(), time.Now(), time.Now(),
		)

		mock.ExpectQuery(followersQuery).WithArgs(followedUUID).WillReturnRows(rows)

		followers, err := repo.GetFollowers(ctx, followedUUID)

		require.NoError(t, err)
		require.Len(t, followers, 1)
		assert.Equal(t, "bob", followers[0].Username)
	})

	t.Run("User without followers yields an empty slice", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectQuery(followersQuery).WithArgs(followedUUID).WillReturnRows(userRows())
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`).
			WithArgs(followedUUID).
			WillReturnRows(existsRow(true))

		followers, err := repo.GetFollowers(ctx, followedUUID)

		require.NoError(t, err)
		assert.NotNil(t, followers)
		assert.Empty(t, followers)
	})

	t.Run("Unknown user yields a not-found error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectQuery(followersQuery).WithArgs(followedUUID).WillReturnRows(userRows())
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM users WHERE user_uuid = $1)`).
			WithArgs(followedUUID).
			WillReturnRows(existsRow(false))

		followers, err := repo.GetFollowers(ctx, followedUUID)

		assert.Nil(t, followers)
		assert.True(t, IsNotFound(err))
	})
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func existsRow(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func resourceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"ressource_uuid", "title", "content", "summary", "is_reported",
		"user_uuid", "updated_by", "ressource_type_uuid", "ressource_status_uuid",
		"created_at", "updated_at",
	})
}

func TestAssociationRepository_CreatePair(t *testing.T) {
	ctx := context.Background()
	tagUUID := uuid.New().String()
	resourceUUID := uuid.New().String()

	t.Run("Create a valid pair", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM ressources WHERE ressource_uuid = $1)`).
			WithArgs(resourceUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectExec(`INSERT INTO have (tag_uuid, ressource_uuid) VALUES ($1, $2)`).
			WithArgs(tagUUID, resourceUUID).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		err := repo.CreatePair(ctx, tagUUID, resourceUUID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown left entity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(false))
		mock.ExpectRollback()

		err := repo.CreatePair(ctx, tagUUID, resourceUUID)

		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "Tag")
		assert.Contains(t, err.Error(), tagUUID)
	})

	t.Run("Unknown right entity", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM ressources WHERE ressource_uuid = $1)`).
			WithArgs(resourceUUID).
			WillReturnRows(existsRow(false))
		mock.ExpectRollback()

		err := repo.CreatePair(ctx, tagUUID, resourceUUID)

		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "Resource")
	})

	t.Run("Duplicate pair is a conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM ressources WHERE ressource_uuid = $1)`).
			WithArgs(resourceUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectExec(`INSERT INTO have (tag_uuid, ressource_uuid) VALUES ($1, $2)`).
			WithArgs(tagUUID, resourceUUID).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "have_pkey"})
		mock.ExpectRollback()

		err := repo.CreatePair(ctx, tagUUID, resourceUUID)

		assert.True(t, IsConflict(err))
	})
}

func TestAssociationRepository_DeletePair(t *testing.T) {
	ctx := context.Background()
	tagUUID := uuid.New().String()
	resourceUUID := uuid.New().String()

	t.Run("Delete an existing pair", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectExec(`DELETE FROM have WHERE tag_uuid = $1 AND ressource_uuid = $2`).
			WithArgs(tagUUID, resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.DeletePair(ctx, tagUUID, resourceUUID)

		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("Delete a missing pair returns false, not an error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectExec(`DELETE FROM have WHERE tag_uuid = $1 AND ressource_uuid = $2`).
			WithArgs(tagUUID, resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeletePair(ctx, tagUUID, resourceUUID)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Database error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectExec(`DELETE FROM have WHERE tag_uuid = $1 AND ressource_uuid = $2`).
			WithArgs(tagUUID, resourceUUID).
			WillReturnError(errors.New("connection failed"))

		deleted, err := repo.DeletePair(ctx, tagUUID, resourceUUID)

		assert.Error(t, err)
		assert.False(t, deleted)
		assert.Contains(t, err.Error(), "failed to delete association")
	})
}

func TestAssociationRepository_RightsByLeft(t *testing.T) {
	ctx := context.Background()
	tagUUID := uuid.New().String()
	resourceUUID := uuid.New().String()
	userUUID := uuid.New().String()
	typeUUID := uuid.New().String()
	statusUUID := uuid.New().String()
	now := time.Now()

	joinQuery := `SELECT e.* FROM ressources e JOIN have a ON a.ressource_uuid = e.ressource_uuid WHERE a.tag_uuid = $1`

	t.Run("Associated resource appears exactly once", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		rows := resourceRows().AddRow(
			resourceUUID, "Title", "Content", nil, false,
			userUUID, nil, typeUUID, statusUUID, now, now,
		)

		mock.ExpectQuery(joinQuery).
			WithArgs(tagUUID).
			WillReturnRows(rows)

		resources, err := repo.RightsByLeft(ctx, tagUUID)

		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, resourceUUID, resources[0].ResourceUUID)
	})

	t.Run("Tag without associations yields an empty slice", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectQuery(joinQuery).
			WithArgs(tagUUID).
			WillReturnRows(resourceRows())
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(true))

		resources, err := repo.RightsByLeft(ctx, tagUUID)

		require.NoError(t, err)
		assert.NotNil(t, resources)
		assert.Empty(t, resources)
	})

	t.Run("Unknown tag yields a not-found error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectQuery(joinQuery).
			WithArgs(tagUUID).
			WillReturnRows(resourceRows())
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM tags WHERE tag_uuid = $1)`).
			WithArgs(tagUUID).
			WillReturnRows(existsRow(false))

		resources, err := repo.RightsByLeft(ctx, tagUUID)

		assert.Nil(t, resources)
		assert.True(t, IsNotFound(err))
	})
}

func TestAssociationRepository_LeftsByRight(t *testing.T) {
	ctx := context.Background()
	tagUUID := uuid.New().String()
	resourceUUID := uuid.New().String()

	joinQuery := `SELECT e.* FROM tags e JOIN have a ON a.tag_uuid = e.tag_uuid WHERE a.ressource_uuid = $1`

	t.Run("Tags of a resource", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		rows := sqlmock.NewRows([]string{"tag_uuid", "tag_title"}).
			AddRow(tagUUID, "golang")

		mock.ExpectQuery(joinQuery).
			WithArgs(resourceUUID).
			WillReturnRows(rows)

		tags, err := repo.LeftsByRight(ctx, resourceUUID)

		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, "golang", tags[0].TagTitle)
	})

	t.Run("Unknown resource yields a not-found error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHaveRepository(db)

		mock.ExpectQuery(joinQuery).
			WithArgs(resourceUUID).
			WillReturnRows(sqlmock.NewRows([]string{"tag_uuid", "tag_title"}))
		mock.ExpectQuery(`SELECT EXISTS (SELECT 1 FROM ressources WHERE ressource_uuid = $1)`).
			WithArgs(resourceUUID).
			WillReturnRows(existsRow(false))

		tags, err := repo.LeftsByRight(ctx, resourceUUID)

		assert.Nil(t, tags)
		assert.True(t, IsNotFound(err))
	})
}

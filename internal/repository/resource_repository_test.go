package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	resourceUUID := uuid.New().String()
	userUUID := uuid.New().String()
	typeUUID := uuid.New().String()
	oldStatusUUID := uuid.New().String()
	newStatusUUID := uuid.New().String()
	now := time.Now()

	lockQuery := `SELECT * FROM ressources WHERE ressource_uuid = $1 FOR UPDATE`
	statusQuery := `SELECT EXISTS (SELECT 1 FROM ressource_status WHERE ressource_status_uuid = $1)`
	updateQuery := `UPDATE ressources SET ressource_status_uuid = $1, updated_by = $2, updated_at = $3 WHERE ressource_uuid = $4`
	historyQuery := `INSERT INTO ressource_status_history (history_uuid, changed_at, preview_state, new_state, ressource_uuid) VALUES ($1, $2, $3, $4, $5)`

	lockedRow := func(statusUUID string) *sqlmock.Rows {
		return resourceRows().AddRow(
			resourceUUID, "Title", "Content", nil, false,
			userUUID, nil, typeUUID, statusUUID, now, now,
		)
	}

	t.Run("Status change appends one history row in the same transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(resourceUUID).
			WillReturnRows(lockedRow(oldStatusUUID))
		mock.ExpectQuery(statusQuery).
			WithArgs(newStatusUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectExec(updateQuery).
			WithArgs(newStatusUUID, userUUID, sqlmock.AnyArg(), resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(historyQuery).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), oldStatusUUID, newStatusUUID, resourceUUID).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		resource, err := repo.UpdateStatus(ctx, resourceUUID, newStatusUUID, userUUID)

		require.NoError(t, err)
		assert.Equal(t, newStatusUUID, resource.ResourceStatusUUID)
		require.NotNil(t, resource.UpdatedBy)
		assert.Equal(t, userUUID, *resource.UpdatedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Same status is a no-op and writes no history", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(resourceUUID).
			WillReturnRows(lockedRow(newStatusUUID))
		mock.ExpectQuery(statusQuery).
			WithArgs(newStatusUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectRollback()

		resource, err := repo.UpdateStatus(ctx, resourceUUID, newStatusUUID, userUUID)

		require.NoError(t, err)
		assert.Equal(t, newStatusUUID, resource.ResourceStatusUUID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unauthenticated update leaves updated_by NULL", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(resourceUUID).
			WillReturnRows(lockedRow(oldStatusUUID))
		mock.ExpectQuery(statusQuery).
			WithArgs(newStatusUUID).
			WillReturnRows(existsRow(true))
		mock.ExpectExec(updateQuery).
			WithArgs(newStatusUUID, nil, sqlmock.AnyArg(), resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(historyQuery).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), oldStatusUUID, newStatusUUID, resourceUUID).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		resource, err := repo.UpdateStatus(ctx, resourceUUID, newStatusUUID, "")

		require.NoError(t, err)
		assert.Nil(t, resource.UpdatedBy)
	})

	t.Run("Unknown resource", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(resourceUUID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		resource, err := repo.UpdateStatus(ctx, resourceUUID, newStatusUUID, userUUID)

		assert.Nil(t, resource)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "Resource")
	})

	t.Run("Unknown target status", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockQuery).
			WithArgs(resourceUUID).
			WillReturnRows(lockedRow(oldStatusUUID))
		mock.ExpectQuery(statusQuery).
			WithArgs(newStatusUUID).
			WillReturnRows(existsRow(false))
		mock.ExpectRollback()

		resource, err := repo.UpdateStatus(ctx, resourceUUID, newStatusUUID, userUUID)

		assert.Nil(t, resource)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), newStatusUUID)
	})
}

func TestResourceRepository_GetByUUID(t *testing.T) {
	ctx := context.Background()
	resourceUUID := uuid.New().String()

	t.Run("Resource found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		rows := resourceRows().AddRow(
			resourceUUID, "Title", "Content", nil, false,
			uuid.New().String(), nil, uuid.New().String(), uuid.New().String(),
			time.Now(), time.Now(),
		)

		mock.ExpectQuery(`SELECT * FROM ressources WHERE ressource_uuid = $1`).
			WithArgs(resourceUUID).
			WillReturnRows(rows)

		resource, err := repo.GetByUUID(ctx, resourceUUID)

		require.NoError(t, err)
		assert.Equal(t, resourceUUID, resource.ResourceUUID)
	})

	t.Run("Resource not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectQuery(`SELECT * FROM ressources WHERE ressource_uuid = $1`).
			WithArgs(resourceUUID).
			WillReturnError(sql.ErrNoRows)

		resource, err := repo.GetByUUID(ctx, resourceUUID)

		assert.Nil(t, resource)
		assert.True(t, IsNotFound(err))
	})
}

func TestResourceRepository_Delete(t *testing.T) {
	ctx := context.Background()
	resourceUUID := uuid.New().String()

	t.Run("Delete an existing resource", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectExec(`DELETE FROM ressources WHERE ressource_uuid = $1`).
			WithArgs(resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, resourceUUID))
	})

	t.Run("Delete an unknown resource", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewResourceRepository(db)

		mock.ExpectExec(`DELETE FROM ressources WHERE ressource_uuid = $1`).
			WithArgs(resourceUUID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, resourceUUID)

		assert.True(t, IsNotFound(err))
	})
}

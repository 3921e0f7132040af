package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	assert.NoError(t, mapError(nil))
	assert.ErrorIs(t, mapError(sql.ErrNoRows), storage.ErrNotFound)
	assert.ErrorIs(t, mapError(other), other)

	err := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "uk_post_user_like"})
	assert.ErrorIs(t, err, storage.ErrUniqueViolation)
	assert.Contains(t, err.Error(), "uk_post_user_like")

	// foreign key violations are not uniqueness problems
	var pgErr *pgconn.PgError
	err = mapError(&pgconn.PgError{Code: "23503"})
	assert.ErrorAs(t, err, &pgErr)
	assert.NotErrorIs(t, err, storage.ErrUniqueViolation)
}

func TestMapWriteError(t *testing.T) {
	assert.ErrorIs(t, mapWriteError(sql.ErrNoRows), storage.ErrStaleWrite)
	assert.ErrorIs(t, mapWriteError(&pgconn.PgError{Code: "23505"}), storage.ErrUniqueViolation)
	assert.NoError(t, mapWriteError(nil))
}

func TestMapSoftDeleteError(t *testing.T) {
	assert.ErrorIs(t, mapSoftDeleteError(storage.ErrNotFound), storage.ErrStaleWrite)
	assert.ErrorIs(t, mapSoftDeleteError(sql.ErrConnDone), sql.ErrConnDone)
}

func TestExecutor_UsesTxFromContext(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM likes").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewLikeRepository(db, storage.GetTxFromContext)
	err := storage.NewTxManager(db).WithinTx(context.Background(), func(ctx context.Context) error {
		assert.IsType(t, &sqlx.Tx{}, repo.executor(ctx))
		return repo.Delete(ctx, uuid.New(), uuid.New())
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecutor_FallsBackToPool(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewLikeRepository(db, storage.GetTxFromContext)
	assert.Same(t, db, repo.executor(context.Background()))
}

var testNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

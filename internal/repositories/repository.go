package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/storage"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolationCode = "23505"

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// base carries the connection and the transaction lookup shared by all repositories.
type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// executor returns the transaction stored in ctx when there is one, the pool otherwise.
func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// logQuery logs a query on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// mapError translates driver errors into storage sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", storage.ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}

// mapWriteError is mapError for version-conditioned writes, where no row
// means the expected version no longer matches.
func mapWriteError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrStaleWrite
	}
	return mapError(err)
}

// execAffecting runs an exec statement and reports storage.ErrNotFound when no row was touched.
func execAffecting(ctx context.Context, ex sqlx.ExtContext, query string, args ...any) error {
	res, err := ex.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}
	if rowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// mapSoftDeleteError converts the "no row touched" outcome of a
// version-conditioned soft delete into storage.ErrStaleWrite. Callers
// resolve the row inside the same transaction first, so a miss here means
// another writer got in between.
func mapSoftDeleteError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return storage.ErrStaleWrite
	}
	return err
}

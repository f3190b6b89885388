package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository carries the shared pgx pool and the transaction lifecycle
// methods embedded by every pgsql repository.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction on the pool.
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction.
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction. Services call it deferred after a
// successful Commit, so a transaction that already finished is not an error.
// Genuine rollback failures are logged because the deferred call site
// discards the return value.
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	middleware.GetLoggerFromCtx(ctx).Error("Failed to rollback transaction",
		slog.String("error", err.Error()))
	return apperrors.NewAppError(500, "failed to rollback transaction", err)
}

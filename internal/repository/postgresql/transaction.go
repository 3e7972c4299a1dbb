package postgresql

import (
	"context"
	"fmt"

	"github.com/itops-tools/absence-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// WithTransaction executes fn inside a database transaction
func WithTransaction(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	// Execute function
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

// AcquireAbsenceLock takes a transaction-scoped advisory lock keyed on the
// service account. Two concurrent writers for the same employee serialize
// here, so the overlap check and the subsequent insert/update form one
// atomic check-then-write sequence. The lock is released on commit or
// rollback.
func AcquireAbsenceLock(ctx context.Context, db *database.DB, serviceAccount string) error {
	q := GetQuerier(ctx, db)
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, serviceAccount); err != nil {
		return fmt.Errorf("acquire absence lock for %s: %w", serviceAccount, err)
	}
	return nil
}

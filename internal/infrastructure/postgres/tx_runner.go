package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TimeEntryTxRunner.
var _ usecase.TimeEntryTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Se usa para escribir la imputación de horas y su entrada de bitácora atómicamente.
func (r *TxRunner) Run(ctx context.Context, fn func(
	entryRepo repository.TimeEntryRepository,
	activityRepo repository.ActivityLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	entryRepo := NewTimeEntryRepository(tx)
	activityRepo := NewActivityLogRepository(tx)

	if err := fn(entryRepo, activityRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

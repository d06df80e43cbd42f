package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcastillo-pa/salon-api/internal/application/usecase"
	"github.com/jcastillo-pa/salon-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.BusinessTxRunner.
var _ usecase.BusinessTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un BusinessRepository atado a la
// tx y hace Commit o Rollback. Se usa para crear negocio + membresía owner en
// una sola unidad atómica.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.BusinessRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewBusinessRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

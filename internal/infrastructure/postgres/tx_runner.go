package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Ensure TxRunner implements production.TxRunner.
var _ production.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunMaterials inicia una transacción con los repos del libro de materia prima
// y hace Commit o Rollback.
func (r *TxRunner) RunMaterials(ctx context.Context, fn func(
	materials repository.RawMaterialRepository,
	entries repository.RawMaterialEntryRepository,
	usages repository.DirectUsageRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRawMaterialRepository(tx), NewRawMaterialEntryRepository(tx), NewDirectUsageRepository(tx)); err != nil {
		return err
	}
	return commit(ctx, tx)
}

// RunIntermediate inicia una transacción con los repos del registro de
// producción intermedia y hace Commit o Rollback.
func (r *TxRunner) RunIntermediate(ctx context.Context, fn func(
	materials repository.RawMaterialRepository,
	lots repository.ProductionLotRepository,
	logs repository.ProductionLogRepository,
	wastages repository.WastageRepository,
	caps repository.CapRepository,
	counters repository.CounterRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewRawMaterialRepository(tx),
		NewProductionLotRepository(tx),
		NewProductionLogRepository(tx),
		NewWastageRepository(tx),
		NewCapRepository(tx),
		NewCounterRepository(tx),
	); err != nil {
		return err
	}
	return commit(ctx, tx)
}

// RunBottle inicia la transacción de la corrida de botellas: los cuatro pools de
// recursos más registro y stock de producto terminado bajo un solo commit.
func (r *TxRunner) RunBottle(ctx context.Context, fn func(
	lots repository.ProductionLotRepository,
	caps repository.CapRepository,
	labels repository.LabelRepository,
	materials repository.RawMaterialRepository,
	products repository.ProductRepository,
	bottles repository.BottleProductionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewProductionLotRepository(tx),
		NewCapRepository(tx),
		NewLabelRepository(tx),
		NewRawMaterialRepository(tx),
		NewProductRepository(tx),
		NewBottleProductionRepository(tx),
	); err != nil {
		return err
	}
	return commit(ctx, tx)
}

// commit confirma la tx; un conflicto de serialización sube como ErrTxAborted
// para que el caller sepa que puede reintentar la operación completa.
func commit(ctx context.Context, tx interface {
	Commit(ctx context.Context) error
}) error {
	if err := tx.Commit(ctx); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01") {
			return fmt.Errorf("%w: %s", domain.ErrTxAborted, pgErr.Message)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

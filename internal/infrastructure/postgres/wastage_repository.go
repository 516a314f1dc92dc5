package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.WastageRepository = (*WastageRepo)(nil)

// WastageRepo implementación del libro de mermas sobre PostgreSQL (pool o tx).
type WastageRepo struct {
	q Querier
}

// NewWastageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWastageRepository(q Querier) *WastageRepo {
	return &WastageRepo{q: q}
}

const wastageColumns = `id, type, source, quantity_generated, quantity_reused, quantity_scrapped, reuse_reference, remarks, recorded_by, date`

// Create persiste una entrada de merma.
func (r *WastageRepo) Create(w *entity.Wastage) error {
	query := `
		INSERT INTO wastages (` + wastageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Type, w.Source, w.QuantityGenerated, w.QuantityReused,
		w.QuantityScrapped, w.ReuseReference, w.Remarks, w.RecordedBy, w.Date,
	)
	if err != nil {
		return fmt.Errorf("create wastage: %w", err)
	}
	return nil
}

// GetByID obtiene una merma; nil si no existe.
func (r *WastageRepo) GetByID(id string) (*entity.Wastage, error) {
	query := `SELECT ` + wastageColumns + ` FROM wastages WHERE id = $1`
	var w entity.Wastage
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Type, &w.Source, &w.QuantityGenerated, &w.QuantityReused,
		&w.QuantityScrapped, &w.ReuseReference, &w.Remarks, &w.RecordedBy, &w.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wastage: %w", err)
	}
	return &w, nil
}

// UpdateReuse persiste el acumulado de reutilización (única mutación permitida).
func (r *WastageRepo) UpdateReuse(w *entity.Wastage) error {
	query := `
		UPDATE wastages
		SET quantity_reused = $2, quantity_scrapped = $3, reuse_reference = $4, remarks = $5
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		w.ID, w.QuantityReused, w.QuantityScrapped, w.ReuseReference, w.Remarks,
	)
	if err != nil {
		return fmt.Errorf("update wastage reuse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List mermas con filtros opcionales, más recientes primero.
func (r *WastageRepo) List(filter repository.WastageFilter) ([]*entity.Wastage, error) {
	query := `SELECT ` + wastageColumns + ` FROM wastages WHERE 1=1`
	var args []any
	if filter.Source != "" {
		args = append(args, filter.Source)
		query += ` AND source = $` + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += ` AND type = $` + strconv.Itoa(len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list wastages: %w", err)
	}
	defer rows.Close()

	var result []*entity.Wastage
	for rows.Next() {
		var w entity.Wastage
		if err := rows.Scan(
			&w.ID, &w.Type, &w.Source, &w.QuantityGenerated, &w.QuantityReused,
			&w.QuantityScrapped, &w.ReuseReference, &w.Remarks, &w.RecordedBy, &w.Date,
		); err != nil {
			return nil, fmt.Errorf("scan wastage: %w", err)
		}
		result = append(result, &w)
	}
	return result, rows.Err()
}

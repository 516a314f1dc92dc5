package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.LabelRepository = (*LabelRepo)(nil)

// LabelRepo catálogo y pool de etiquetas sobre PostgreSQL (pool o tx).
// Mismo contrato de descuento condicional que CapRepo.
type LabelRepo struct {
	q Querier
}

// NewLabelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLabelRepository(q Querier) *LabelRepo {
	return &LabelRepo{q: q}
}

const labelColumns = `id, bottle_category, bottle_name, quantity_available, remarks, is_active, created_by, last_updated_by, created_at, updated_at`

// Create inserta un SKU de etiqueta; (bottle_category, bottle_name) duplicado sube como ErrDuplicate.
func (r *LabelRepo) Create(l *entity.Label) error {
	query := `
		INSERT INTO labels (` + labelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.BottleCategory, l.BottleName, l.QuantityAvailable, l.Remarks,
		l.IsActive, l.CreatedBy, l.LastUpdatedBy, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create label: %w", err)
	}
	return nil
}

// GetByID obtiene el SKU; nil si no existe.
func (r *LabelRepo) GetByID(id string) (*entity.Label, error) {
	query := `SELECT ` + labelColumns + ` FROM labels WHERE id = $1`
	var l entity.Label
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.BottleCategory, &l.BottleName, &l.QuantityAvailable, &l.Remarks,
		&l.IsActive, &l.CreatedBy, &l.LastUpdatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get label: %w", err)
	}
	return &l, nil
}

// TryDecrement descuenta solo si alcanza, en un único UPDATE condicional.
func (r *LabelRepo) TryDecrement(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	query := `
		UPDATE labels
		SET quantity_available = quantity_available - $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1 AND is_active = true AND quantity_available >= $2
		RETURNING quantity_available`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, qty, actor).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("decrement label: %w", err)
	}
	current, err := r.GetByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	if current == nil || !current.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	return decimal.Zero, domain.NewInsufficientStock("label", current.QuantityAvailable, qty)
}

// Increment abona unidades al pool y devuelve el nuevo disponible.
func (r *LabelRepo) Increment(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	query := `
		UPDATE labels
		SET quantity_available = quantity_available + $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1 AND is_active = true
		RETURNING quantity_available`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, qty, actor).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("increment label: %w", err)
	}
	return newQty, nil
}

// SetAvailable fija el disponible (conteo físico).
func (r *LabelRepo) SetAvailable(id string, qty decimal.Decimal, actor string) error {
	query := `
		UPDATE labels
		SET quantity_available = $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, qty, actor)
	if err != nil {
		return fmt.Errorf("set label stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica.
func (r *LabelRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE labels SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate label: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista SKUs de etiqueta.
func (r *LabelRepo) List(onlyActive bool) ([]*entity.Label, error) {
	query := `SELECT ` + labelColumns + ` FROM labels`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY bottle_category, bottle_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list labels: %w", err)
	}
	defer rows.Close()

	var result []*entity.Label
	for rows.Next() {
		var l entity.Label
		if err := rows.Scan(
			&l.ID, &l.BottleCategory, &l.BottleName, &l.QuantityAvailable, &l.Remarks,
			&l.IsActive, &l.CreatedBy, &l.LastUpdatedBy, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan label: %w", err)
		}
		result = append(result, &l)
	}
	return result, rows.Err()
}

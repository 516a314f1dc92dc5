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

var _ repository.CapRepository = (*CapRepo)(nil)

// CapRepo catálogo y pool de tapas sobre PostgreSQL (pool o tx).
type CapRepo struct {
	q Querier
}

// NewCapRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCapRepository(q Querier) *CapRepo {
	return &CapRepo{q: q}
}

const capColumns = `id, neck_type, size, color, quantity_available, remarks, is_active, created_by, last_updated_by, created_at, updated_at`

// Create inserta un SKU de tapa; (neck_type, size, color) duplicado sube como ErrDuplicate.
func (r *CapRepo) Create(c *entity.Cap) error {
	query := `
		INSERT INTO caps (` + capColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NeckType, c.Size, c.Color, c.QuantityAvailable, c.Remarks,
		c.IsActive, c.CreatedBy, c.LastUpdatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create cap: %w", err)
	}
	return nil
}

// GetByID obtiene el SKU; nil si no existe.
func (r *CapRepo) GetByID(id string) (*entity.Cap, error) {
	query := `SELECT ` + capColumns + ` FROM caps WHERE id = $1`
	var c entity.Cap
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NeckType, &c.Size, &c.Color, &c.QuantityAvailable, &c.Remarks,
		&c.IsActive, &c.CreatedBy, &c.LastUpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cap: %w", err)
	}
	return &c, nil
}

// TryDecrement descuenta solo si alcanza, en un único UPDATE condicional:
// no hay ventana entre verificación y descuento. Devuelve el nuevo disponible.
func (r *CapRepo) TryDecrement(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	query := `
		UPDATE caps
		SET quantity_available = quantity_available - $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1 AND is_active = true AND quantity_available >= $2
		RETURNING quantity_available`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, qty, actor).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("decrement cap: %w", err)
	}
	// Cero filas: distinguir SKU inexistente/inactivo de faltante real.
	current, err := r.GetByID(id)
	if err != nil {
		return decimal.Zero, err
	}
	if current == nil || !current.IsActive {
		return decimal.Zero, domain.ErrNotFound
	}
	return decimal.Zero, domain.NewInsufficientStock("cap", current.QuantityAvailable, qty)
}

// Increment abona unidades al pool y devuelve el nuevo disponible.
func (r *CapRepo) Increment(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	query := `
		UPDATE caps
		SET quantity_available = quantity_available + $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1 AND is_active = true
		RETURNING quantity_available`
	var newQty decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, id, qty, actor).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("increment cap: %w", err)
	}
	return newQty, nil
}

// SetAvailable fija el disponible (conteo físico).
func (r *CapRepo) SetAvailable(id string, qty decimal.Decimal, actor string) error {
	query := `
		UPDATE caps
		SET quantity_available = $2, last_updated_by = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, qty, actor)
	if err != nil {
		return fmt.Errorf("set cap stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica.
func (r *CapRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE caps SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate cap: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista SKUs de tapa.
func (r *CapRepo) List(onlyActive bool) ([]*entity.Cap, error) {
	query := `SELECT ` + capColumns + ` FROM caps`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY neck_type, size, color`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list caps: %w", err)
	}
	defer rows.Close()

	var result []*entity.Cap
	for rows.Next() {
		var c entity.Cap
		if err := rows.Scan(
			&c.ID, &c.NeckType, &c.Size, &c.Color, &c.QuantityAvailable, &c.Remarks,
			&c.IsActive, &c.CreatedBy, &c.LastUpdatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cap: %w", err)
		}
		result = append(result, &c)
	}
	return result, rows.Err()
}

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

var _ repository.RawMaterialRepository = (*RawMaterialRepo)(nil)

// RawMaterialRepo implementación de RawMaterialRepository sobre PostgreSQL
// (usable con pool o tx).
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

const rawMaterialColumns = `id, item_name, item_code, subcategory, unit, supplier, min_stock_level, current_stock, remarks, is_active, created_at`

// Create inserta una materia prima; item_code duplicado sube como ErrDuplicate.
func (r *RawMaterialRepo) Create(m *entity.RawMaterial) error {
	query := `
		INSERT INTO raw_materials (` + rawMaterialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemName, m.ItemCode, m.Subcategory, m.Unit, m.Supplier,
		m.MinStockLevel, m.CurrentStock, m.Remarks, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create raw material: %w", err)
	}
	return nil
}

// GetByID obtiene la materia prima; nil si no existe.
func (r *RawMaterialRepo) GetByID(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene la materia prima por item_code; nil si no existe.
func (r *RawMaterialRepo) GetByCode(itemCode string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE item_code = $1`
	return r.scanOne(query, itemCode)
}

// GetForUpdate obtiene la materia prima y bloquea la fila (SELECT FOR UPDATE).
func (r *RawMaterialRepo) GetForUpdate(id string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

// GetByCodeForUpdate bloquea por item_code (shrink roll en la corrida de botellas).
func (r *RawMaterialRepo) GetByCodeForUpdate(itemCode string) (*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials WHERE item_code = $1 FOR UPDATE`
	return r.scanOne(query, itemCode)
}

// UpdateStock fija el stock vigente de la materia prima.
func (r *RawMaterialRepo) UpdateStock(id string, newStock decimal.Decimal) error {
	query := `UPDATE raw_materials SET current_stock = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, newStock)
	if err != nil {
		return fmt.Errorf("update raw material stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Update actualiza los datos de catálogo (no el stock).
func (r *RawMaterialRepo) Update(m *entity.RawMaterial) error {
	query := `
		UPDATE raw_materials
		SET item_name = $2, subcategory = $3, unit = $4, supplier = $5,
		    min_stock_level = $6, remarks = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		m.ID, m.ItemName, m.Subcategory, m.Unit, m.Supplier, m.MinStockLevel, m.Remarks,
	)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate baja lógica.
func (r *RawMaterialRepo) Deactivate(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE raw_materials SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate raw material: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo, opcionalmente solo activos.
func (r *RawMaterialRepo) List(onlyActive bool) ([]*entity.RawMaterial, error) {
	query := `SELECT ` + rawMaterialColumns + ` FROM raw_materials`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY item_name`
	return r.scanMany(query)
}

// ListLowStock materiales activos con stock en o bajo el punto de reorden.
func (r *RawMaterialRepo) ListLowStock() ([]*entity.RawMaterial, error) {
	query := `
		SELECT ` + rawMaterialColumns + `
		FROM raw_materials
		WHERE is_active = true AND current_stock <= min_stock_level
		ORDER BY item_name`
	return r.scanMany(query)
}

func (r *RawMaterialRepo) scanOne(query string, args ...any) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&m.ID, &m.ItemName, &m.ItemCode, &m.Subcategory, &m.Unit, &m.Supplier,
		&m.MinStockLevel, &m.CurrentStock, &m.Remarks, &m.IsActive, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return &m, nil
}

func (r *RawMaterialRepo) scanMany(query string, args ...any) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()

	var result []*entity.RawMaterial
	for rows.Next() {
		var m entity.RawMaterial
		if err := rows.Scan(
			&m.ID, &m.ItemName, &m.ItemCode, &m.Subcategory, &m.Unit, &m.Supplier,
			&m.MinStockLevel, &m.CurrentStock, &m.Remarks, &m.IsActive, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		result = append(result, &m)
	}
	return result, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo producto terminado y su historial de stock (pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category, bottles_per_box, boxes, is_active, created_at, updated_at`

// Create inserta un producto terminado.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Category, p.BottlesPerBox, p.Boxes, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.BottlesPerBox, &p.Boxes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List lista productos terminados.
func (r *ProductRepo) List(onlyActive bool) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var result []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.BottlesPerBox, &p.Boxes, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result = append(result, &p)
	}
	return result, rows.Err()
}

// AddBoxes suma cajas al stock y deja el movimiento en el historial,
// ambos dentro de la transacción en curso.
func (r *ProductRepo) AddBoxes(productID string, log *entity.ProductStockLog) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE products SET boxes = boxes + $2, updated_at = now() WHERE id = $1`,
		productID, log.Boxes,
	)
	if err != nil {
		return fmt.Errorf("add boxes to product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	_, err = r.q.Exec(context.Background(),
		`INSERT INTO product_stock_logs (id, product_id, boxes, change_type, message, production_id, updated_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		log.ID, productID, log.Boxes, log.ChangeType, log.Message, log.ProductionID, log.UpdatedBy, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create product stock log: %w", err)
	}
	return nil
}

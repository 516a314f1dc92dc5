package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.BottleProductionRepository = (*BottleProductionRepo)(nil)

// BottleProductionRepo registros inmutables de corridas de botellas (pool o tx).
// La traza FIFO de lotes vive en bottle_production_lots.
type BottleProductionRepo struct {
	q Querier
}

// NewBottleProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBottleProductionRepository(q Querier) *BottleProductionRepo {
	return &BottleProductionRepo{q: q}
}

const bottleProductionColumns = `id, preform_outcome_key, boxes_produced, bottles_per_box, product_id, bottle_category,
	label_id, label_bottle_name, label_bottle_category, label_quantity,
	cap_id, cap_neck_type, cap_size, cap_color, cap_quantity,
	total_bottles, shrink_used, preform_used, remarks, production_date, recorded_by, created_at`

// Create persiste la corrida con su traza de lotes. Solo inserción.
func (r *BottleProductionRepo) Create(rec *entity.BottleProduction) error {
	query := `
		INSERT INTO bottle_productions (` + bottleProductionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.PreformOutcomeKey, rec.BoxesProduced, rec.BottlesPerBox, rec.ProductID, rec.BottleCategory,
		rec.LabelUsed.LabelID, rec.LabelUsed.BottleName, rec.LabelUsed.BottleCategory, rec.LabelUsed.Quantity,
		rec.CapUsed.CapID, rec.CapUsed.NeckType, rec.CapUsed.Size, rec.CapUsed.Color, rec.CapUsed.Quantity,
		rec.TotalBottles, rec.ShrinkUsed, rec.PreformUsed, rec.Remarks, rec.ProductionDate, rec.RecordedBy, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create bottle production: %w", err)
	}
	for _, usage := range rec.LotUsage {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO bottle_production_lots (production_id, lot_id, lot_no, quantity, production_date)
			 VALUES ($1, $2, $3, $4, $5)`,
			rec.ID, usage.LotID, usage.LotNo, usage.Quantity, usage.ProductionDate,
		)
		if err != nil {
			return fmt.Errorf("create bottle production lot line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una corrida con su traza; nil si no existe.
func (r *BottleProductionRepo) GetByID(id string) (*entity.BottleProduction, error) {
	query := `SELECT ` + bottleProductionColumns + ` FROM bottle_productions WHERE id = $1`
	var rec entity.BottleProduction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.PreformOutcomeKey, &rec.BoxesProduced, &rec.BottlesPerBox, &rec.ProductID, &rec.BottleCategory,
		&rec.LabelUsed.LabelID, &rec.LabelUsed.BottleName, &rec.LabelUsed.BottleCategory, &rec.LabelUsed.Quantity,
		&rec.CapUsed.CapID, &rec.CapUsed.NeckType, &rec.CapUsed.Size, &rec.CapUsed.Color, &rec.CapUsed.Quantity,
		&rec.TotalBottles, &rec.ShrinkUsed, &rec.PreformUsed, &rec.Remarks, &rec.ProductionDate, &rec.RecordedBy, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bottle production: %w", err)
	}
	if err := r.loadLotUsage(&rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List corridas más recientes primero.
func (r *BottleProductionRepo) List(limit int) ([]*entity.BottleProduction, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `SELECT ` + bottleProductionColumns + ` FROM bottle_productions ORDER BY production_date DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list bottle productions: %w", err)
	}
	defer rows.Close()

	var result []*entity.BottleProduction
	for rows.Next() {
		var rec entity.BottleProduction
		if err := rows.Scan(
			&rec.ID, &rec.PreformOutcomeKey, &rec.BoxesProduced, &rec.BottlesPerBox, &rec.ProductID, &rec.BottleCategory,
			&rec.LabelUsed.LabelID, &rec.LabelUsed.BottleName, &rec.LabelUsed.BottleCategory, &rec.LabelUsed.Quantity,
			&rec.CapUsed.CapID, &rec.CapUsed.NeckType, &rec.CapUsed.Size, &rec.CapUsed.Color, &rec.CapUsed.Quantity,
			&rec.TotalBottles, &rec.ShrinkUsed, &rec.PreformUsed, &rec.Remarks, &rec.ProductionDate, &rec.RecordedBy, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bottle production: %w", err)
		}
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, rec := range result {
		if err := r.loadLotUsage(rec); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *BottleProductionRepo) loadLotUsage(rec *entity.BottleProduction) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT lot_id, lot_no, quantity, production_date
		 FROM bottle_production_lots
		 WHERE production_id = $1
		 ORDER BY production_date ASC, lot_no ASC`, rec.ID)
	if err != nil {
		return fmt.Errorf("load bottle production lots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var usage entity.LotUsage
		if err := rows.Scan(&usage.LotID, &usage.LotNo, &usage.Quantity, &usage.ProductionDate); err != nil {
			return fmt.Errorf("scan bottle production lot line: %w", err)
		}
		rec.LotUsage = append(rec.LotUsage, usage)
	}
	return rows.Err()
}

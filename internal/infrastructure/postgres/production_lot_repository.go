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

var _ repository.ProductionLotRepository = (*ProductionLotRepo)(nil)

// ProductionLotRepo implementación de lotes discretos sobre PostgreSQL (pool o tx).
// Las líneas de consumo viven en production_lot_materials.
type ProductionLotRepo struct {
	q Querier
}

// NewProductionLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionLotRepository(q Querier) *ProductionLotRepo {
	return &ProductionLotRepo{q: q}
}

const lotColumns = `id, lot_no, good_type, outcome_key, quantity_produced, wastage_reusable, wastage_scrap, consumed_qty, remarks, production_date, recorded_by, created_at`

// Create inserta el lote y sus líneas de consumo.
func (r *ProductionLotRepo) Create(lot *entity.ProductionLot) error {
	query := `
		INSERT INTO production_lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.LotNo, lot.GoodType, lot.OutcomeKey, lot.QuantityProduced,
		lot.WastageReusable, lot.WastageScrap, lot.ConsumedQty, lot.Remarks,
		lot.ProductionDate, lot.RecordedBy, lot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create production lot: %w", err)
	}
	for _, line := range lot.Materials {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO production_lot_materials (lot_id, material_id, quantity) VALUES ($1, $2, $3)`,
			lot.ID, line.MaterialID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("create production lot material line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un lote con sus líneas; nil si no existe.
func (r *ProductionLotRepo) GetByID(id string) (*entity.ProductionLot, error) {
	query := `SELECT ` + lotColumns + ` FROM production_lots WHERE id = $1`
	var lot entity.ProductionLot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&lot.ID, &lot.LotNo, &lot.GoodType, &lot.OutcomeKey, &lot.QuantityProduced,
		&lot.WastageReusable, &lot.WastageScrap, &lot.ConsumedQty, &lot.Remarks,
		&lot.ProductionDate, &lot.RecordedBy, &lot.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production lot: %w", err)
	}
	if err := r.loadMaterials(&lot); err != nil {
		return nil, err
	}
	return &lot, nil
}

// ListByKey lotes del outcome key en orden FIFO (fecha asc, lot_no asc).
func (r *ProductionLotRepo) ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM production_lots
		WHERE good_type = $1 AND outcome_key = $2
		ORDER BY production_date ASC, lot_no ASC`
	return r.scanLots(query, goodType, outcomeKey)
}

// ListByKeyForUpdate igual que ListByKey pero bloqueando las filas, para que
// dos corridas concurrentes no asignen el mismo disponible.
func (r *ProductionLotRepo) ListByKeyForUpdate(goodType, outcomeKey string) ([]*entity.ProductionLot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM production_lots
		WHERE good_type = $1 AND outcome_key = $2
		ORDER BY production_date ASC, lot_no ASC
		FOR UPDATE`
	return r.scanLots(query, goodType, outcomeKey)
}

// AddConsumed incrementa consumed_qty sin romper el invariante de disponible >= 0.
// El WHERE rechaza el incremento si excedería lo consumible del lote.
func (r *ProductionLotRepo) AddConsumed(lotID string, qty decimal.Decimal) error {
	query := `
		UPDATE production_lots
		SET consumed_qty = consumed_qty + $2
		WHERE id = $1
		  AND quantity_produced - wastage_reusable - wastage_scrap - consumed_qty >= $2`
	tag, err := r.q.Exec(context.Background(), query, lotID, qty)
	if err != nil {
		return fmt.Errorf("add consumed to lot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ListOutcomeKeys outcome keys con lotes registrados para el tipo de bien.
func (r *ProductionLotRepo) ListOutcomeKeys(goodType string) ([]string, error) {
	query := `SELECT DISTINCT outcome_key FROM production_lots WHERE good_type = $1 ORDER BY outcome_key`
	rows, err := r.q.Query(context.Background(), query, goodType)
	if err != nil {
		return nil, fmt.Errorf("list outcome keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan outcome key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (r *ProductionLotRepo) scanLots(query string, args ...any) ([]*entity.ProductionLot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production lots: %w", err)
	}
	defer rows.Close()

	var lots []*entity.ProductionLot
	for rows.Next() {
		var lot entity.ProductionLot
		if err := rows.Scan(
			&lot.ID, &lot.LotNo, &lot.GoodType, &lot.OutcomeKey, &lot.QuantityProduced,
			&lot.WastageReusable, &lot.WastageScrap, &lot.ConsumedQty, &lot.Remarks,
			&lot.ProductionDate, &lot.RecordedBy, &lot.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production lot: %w", err)
		}
		lots = append(lots, &lot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, lot := range lots {
		if err := r.loadMaterials(lot); err != nil {
			return nil, err
		}
	}
	return lots, nil
}

func (r *ProductionLotRepo) loadMaterials(lot *entity.ProductionLot) error {
	rows, err := r.q.Query(context.Background(),
		`SELECT material_id, quantity FROM production_lot_materials WHERE lot_id = $1`, lot.ID)
	if err != nil {
		return fmt.Errorf("load lot materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.MaterialLine
		if err := rows.Scan(&line.MaterialID, &line.Quantity); err != nil {
			return fmt.Errorf("scan lot material line: %w", err)
		}
		lot.Materials = append(lot.Materials, line)
	}
	return rows.Err()
}

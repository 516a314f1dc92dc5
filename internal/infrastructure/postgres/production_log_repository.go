package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.ProductionLogRepository = (*ProductionLogRepo)(nil)

// ProductionLogRepo bitácora inmutable de producción intermedia (pool o tx).
type ProductionLogRepo struct {
	q Querier
}

// NewProductionLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionLogRepository(q Querier) *ProductionLogRepo {
	return &ProductionLogRepo{q: q}
}

// Create anexa una entrada de bitácora con sus líneas de consumo.
func (r *ProductionLogRepo) Create(log *entity.ProductionLog) error {
	query := `
		INSERT INTO production_logs (id, lot_id, good_type, outcome_key, quantity_produced, wastage_reusable, wastage_scrap, remarks, production_date, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.LotID, log.GoodType, log.OutcomeKey, log.QuantityProduced,
		log.WastageReusable, log.WastageScrap, log.Remarks, log.ProductionDate,
		log.RecordedBy, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create production log: %w", err)
	}
	for _, line := range log.Materials {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO production_log_materials (log_id, material_id, quantity) VALUES ($1, $2, $3)`,
			log.ID, line.MaterialID, line.Quantity,
		)
		if err != nil {
			return fmt.Errorf("create production log material line: %w", err)
		}
	}
	return nil
}

// ListByKey bitácora de un outcome key, más reciente primero.
func (r *ProductionLogRepo) ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLog, error) {
	query := `
		SELECT id, lot_id, good_type, outcome_key, quantity_produced, wastage_reusable, wastage_scrap, remarks, production_date, recorded_by, created_at
		FROM production_logs
		WHERE good_type = $1 AND outcome_key = $2
		ORDER BY production_date DESC`
	rows, err := r.q.Query(context.Background(), query, goodType, outcomeKey)
	if err != nil {
		return nil, fmt.Errorf("list production logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.ProductionLog
	for rows.Next() {
		var log entity.ProductionLog
		if err := rows.Scan(
			&log.ID, &log.LotID, &log.GoodType, &log.OutcomeKey, &log.QuantityProduced,
			&log.WastageReusable, &log.WastageScrap, &log.Remarks, &log.ProductionDate,
			&log.RecordedBy, &log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production log: %w", err)
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}

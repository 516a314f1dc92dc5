package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.DirectUsageRepository = (*DirectUsageRepo)(nil)

// DirectUsageRepo consumos directos de materia prima (pool o tx).
type DirectUsageRepo struct {
	q Querier
}

// NewDirectUsageRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDirectUsageRepository(q Querier) *DirectUsageRepo {
	return &DirectUsageRepo{q: q}
}

// Create persiste un consumo directo.
func (r *DirectUsageRepo) Create(u *entity.DirectUsage) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	query := `
		INSERT INTO direct_usages (id, material_id, quantity, purpose, remarks, usage_date, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.MaterialID, u.Quantity, u.Purpose, u.Remarks, u.UsageDate, u.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("create direct usage: %w", err)
	}
	return nil
}

// List consumos directos, más recientes primero.
func (r *DirectUsageRepo) List(limit int) ([]*entity.DirectUsage, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, material_id, quantity, purpose, remarks, usage_date, recorded_by
		FROM direct_usages
		ORDER BY usage_date DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list direct usages: %w", err)
	}
	defer rows.Close()

	var result []*entity.DirectUsage
	for rows.Next() {
		var u entity.DirectUsage
		if err := rows.Scan(&u.ID, &u.MaterialID, &u.Quantity, &u.Purpose, &u.Remarks, &u.UsageDate, &u.RecordedBy); err != nil {
			return nil, fmt.Errorf("scan direct usage: %w", err)
		}
		result = append(result, &u)
	}
	return result, rows.Err()
}

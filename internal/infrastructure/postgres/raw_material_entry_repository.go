package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.RawMaterialEntryRepository = (*RawMaterialEntryRepo)(nil)

// RawMaterialEntryRepo implementación sobre PostgreSQL (usable con pool o tx).
type RawMaterialEntryRepo struct {
	q Querier
}

// NewRawMaterialEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialEntryRepository(q Querier) *RawMaterialEntryRepo {
	return &RawMaterialEntryRepo{q: q}
}

// Create persiste una entrada de auditoría (inmutable).
func (r *RawMaterialEntryRepo) Create(e *entity.RawMaterialEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO raw_material_entries (id, material_id, quantity, remarks, manual, entered_by, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.MaterialID, e.Quantity, e.Remarks, e.Manual, e.EnteredBy, e.EntryDate,
	)
	if err != nil {
		return fmt.Errorf("create raw material entry: %w", err)
	}
	return nil
}

// ListByMaterial entradas de un material, más recientes primero.
func (r *RawMaterialEntryRepo) ListByMaterial(materialID string, limit int) ([]*entity.RawMaterialEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, material_id, quantity, remarks, manual, entered_by, entry_date
		FROM raw_material_entries
		WHERE material_id = $1
		ORDER BY entry_date DESC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, materialID, limit)
	if err != nil {
		return nil, fmt.Errorf("list raw material entries: %w", err)
	}
	defer rows.Close()

	var result []*entity.RawMaterialEntry
	for rows.Next() {
		var e entity.RawMaterialEntry
		if err := rows.Scan(&e.ID, &e.MaterialID, &e.Quantity, &e.Remarks, &e.Manual, &e.EnteredBy, &e.EntryDate); err != nil {
			return nil, fmt.Errorf("scan raw material entry: %w", err)
		}
		result = append(result, &e)
	}
	return result, rows.Err()
}

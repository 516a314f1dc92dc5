package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo secuencias con nombre sobre la tabla counters (pool o tx).
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

// Next incrementa y devuelve el valor en un solo statement: el upsert crea el
// contador en el primer uso y el RETURNING evita la carrera leer-luego-escribir.
func (r *CounterRepo) Next(name string) (int64, error) {
	query := `
		INSERT INTO counters (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("next counter %q: %w", name, err)
	}
	return value, nil
}

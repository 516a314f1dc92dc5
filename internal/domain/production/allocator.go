package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// LotAllocation es una línea del plan FIFO: cuánto tomar de qué lote.
type LotAllocation struct {
	Lot      *entity.ProductionLot
	Quantity decimal.Decimal
}

// AllocationPlan es el resultado de AllocateFIFO. Las asignaciones suman
// exactamente lo requerido; nunca hay plan parcial.
type AllocationPlan struct {
	Allocations    []LotAllocation
	TotalAllocated decimal.Decimal
}

// AllocateFIFO reparte required sobre los lotes recibidos, del más antiguo al más
// nuevo, tomando min(disponible, restante) de cada uno. No muta nada: es un paso
// de planeación puro, reutilizable por el chequeo de disponibilidad en seco.
//
// Los lotes deben venir en orden FIFO (production_date asc, lot_no asc); el
// repositorio garantiza ese orden y aquí no se reordena.
//
// Si el total disponible no alcanza, devuelve InsufficientStockError con el
// disponible agregado y ninguna asignación.
func AllocateFIFO(resource string, lots []*entity.ProductionLot, required decimal.Decimal) (*AllocationPlan, error) {
	if !required.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	total := TotalAvailable(lots)
	if total.LessThan(required) {
		return nil, domain.NewInsufficientStock(resource, total, required)
	}

	plan := &AllocationPlan{}
	remaining := required
	for _, lot := range lots {
		if !remaining.IsPositive() {
			break
		}
		available := lot.Available()
		if !available.IsPositive() {
			continue
		}
		take := decimal.Min(available, remaining)
		plan.Allocations = append(plan.Allocations, LotAllocation{Lot: lot, Quantity: take})
		plan.TotalAllocated = plan.TotalAllocated.Add(take)
		remaining = remaining.Sub(take)
	}
	return plan, nil
}

// TotalAvailable suma el disponible (con piso en cero) de los lotes.
func TotalAvailable(lots []*entity.ProductionLot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Available())
	}
	return total
}

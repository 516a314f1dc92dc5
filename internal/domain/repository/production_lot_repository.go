package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionLotRepository puerto para lotes discretos de producción intermedia.
// El orden de ListByKey/ListByKeyForUpdate es el orden FIFO:
// production_date ascendente, desempate por lot_no ascendente.
type ProductionLotRepository interface {
	Create(lot *entity.ProductionLot) error
	GetByID(id string) (*entity.ProductionLot, error)
	ListByKey(goodType, outcomeKey string) ([]*entity.ProductionLot, error)
	// ListByKeyForUpdate bloquea los lotes del outcome key (SELECT FOR UPDATE)
	// para que dos corridas concurrentes no asignen el mismo disponible.
	ListByKeyForUpdate(goodType, outcomeKey string) ([]*entity.ProductionLot, error)
	// AddConsumed incrementa consumed_qty del lote dentro de la transacción en curso.
	AddConsumed(lotID string, qty decimal.Decimal) error
	ListOutcomeKeys(goodType string) ([]string, error)
}

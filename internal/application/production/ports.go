package production

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera de atomicidad del motor:
// si fn devuelve error no queda ningún efecto observable.
type TxRunner interface {
	// RunMaterials transacción sobre el libro de materia prima (entradas,
	// ajustes manuales, uso directo).
	RunMaterials(ctx context.Context, fn func(
		materials repository.RawMaterialRepository,
		entries repository.RawMaterialEntryRepository,
		usages repository.DirectUsageRepository,
	) error) error

	// RunIntermediate transacción de registro de producción intermedia
	// (preformas/tapas): consumo de materia prima, lote, bitácora, mermas
	// y abono al pool de tapas.
	RunIntermediate(ctx context.Context, fn func(
		materials repository.RawMaterialRepository,
		lots repository.ProductionLotRepository,
		logs repository.ProductionLogRepository,
		wastages repository.WastageRepository,
		caps repository.CapRepository,
		counters repository.CounterRepository,
	) error) error

	// RunBottle transacción de la corrida de botellas: abarca los cuatro pools
	// de recursos más la inserción del registro y el stock de producto terminado.
	RunBottle(ctx context.Context, fn func(
		lots repository.ProductionLotRepository,
		caps repository.CapRepository,
		labels repository.LabelRepository,
		materials repository.RawMaterialRepository,
		products repository.ProductRepository,
		bottles repository.BottleProductionRepository,
	) error) error
}

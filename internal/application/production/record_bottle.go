package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Nombres de recurso en errores de faltante de la corrida de botellas.
const (
	ResourcePreform = "preform"
	ResourceCap     = "cap"
	ResourceLabel   = "label"
	ResourceShrink  = "shrink roll"
)

// RecordBottleUseCase orquesta la corrida de producto terminado: asigna lotes de
// preformas por FIFO, descuenta tapas y etiquetas con decremento condicional,
// descuenta shrink roll y recién entonces persiste el registro y abona el stock
// de cajas. Los cuatro chequeos y el commit van en una sola transacción; cualquier
// faltante revierte todo sin efecto observable.
type RecordBottleUseCase struct {
	txRunner     TxRunner
	products     repository.ProductRepository
	bottles      repository.BottleProductionRepository
	shrinkPerBox decimal.Decimal
	shrinkCode   string
}

// NewRecordBottleUseCase construye el orquestador. shrinkPerBox en g/caja y el
// itemCode del shrink roll vienen de configuración.
func NewRecordBottleUseCase(txRunner TxRunner, products repository.ProductRepository, bottles repository.BottleProductionRepository, shrinkPerBox decimal.Decimal, shrinkCode string) *RecordBottleUseCase {
	return &RecordBottleUseCase{
		txRunner:     txRunner,
		products:     products,
		bottles:      bottles,
		shrinkPerBox: shrinkPerBox,
		shrinkCode:   shrinkCode,
	}
}

// Record ejecuta la corrida. Orden de chequeos: preformas (plan FIFO sobre filas
// bloqueadas), tapas, etiquetas, shrink roll; nada muta hasta que los cuatro
// pasan, así que cualquier permutación sería igual de correcta: el contrato es
// todo-o-nada.
func (uc *RecordBottleUseCase) Record(ctx context.Context, input BottleRunInput) (*entity.BottleProduction, error) {
	req, err := computeRequirements(input, uc.shrinkPerBox)
	if err != nil {
		return nil, err
	}
	if input.Actor == "" {
		return nil, domain.ErrInvalidInput
	}

	// El producto (categoría de botella) debe existir antes de abrir la tx.
	product, err := uc.products.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var rec *entity.BottleProduction

	err = uc.txRunner.RunBottle(ctx, func(
		lots repository.ProductionLotRepository,
		caps repository.CapRepository,
		labels repository.LabelRepository,
		materials repository.RawMaterialRepository,
		products repository.ProductRepository,
		bottles repository.BottleProductionRepository,
	) error {
		// (a) Preformas: bloquear los lotes del outcome key y planear FIFO.
		// El plan no muta nada; el consumo se confirma al final.
		preformLots, err := lots.ListByKeyForUpdate(entity.GoodTypePreform, req.outcomeKey)
		if err != nil {
			return err
		}
		plan, err := domainprod.AllocateFIFO(ResourcePreform, preformLots, req.totalBottles)
		if err != nil {
			return err
		}

		// (b) Tapas: decremento condicional atómico.
		cap, err := decrementCap(caps, input.CapID, req.totalBottles, input.Actor)
		if err != nil {
			return err
		}

		// (c) Etiquetas: mismo primitivo.
		label, err := decrementLabel(labels, input.LabelID, req.totalBottles, input.Actor)
		if err != nil {
			return err
		}

		// (d) Shrink roll: fila bloqueada, verificación y descuento.
		shrink, err := materials.GetByCodeForUpdate(uc.shrinkCode)
		if err != nil {
			return err
		}
		if shrink == nil || !shrink.IsActive {
			return domain.ErrNotFound
		}
		if shrink.CurrentStock.LessThan(req.shrinkNeeded) {
			return domain.NewInsufficientStock(ResourceShrink, shrink.CurrentStock, req.shrinkNeeded)
		}
		if err := materials.UpdateStock(shrink.ID, shrink.CurrentStock.Sub(req.shrinkNeeded)); err != nil {
			return err
		}

		// (e) Todos los chequeos pasaron: confirmar consumo de lotes, persistir
		// el registro con la traza completa y abonar las cajas al producto.
		lotUsage := make([]entity.LotUsage, len(plan.Allocations))
		for i, alloc := range plan.Allocations {
			if err := lots.AddConsumed(alloc.Lot.ID, alloc.Quantity); err != nil {
				return err
			}
			lotUsage[i] = entity.LotUsage{
				LotID:          alloc.Lot.ID,
				LotNo:          alloc.Lot.LotNo,
				Quantity:       alloc.Quantity,
				ProductionDate: alloc.Lot.ProductionDate,
			}
		}

		rec = &entity.BottleProduction{
			ID:                uuid.New().String(),
			PreformOutcomeKey: req.outcomeKey,
			BoxesProduced:     input.Boxes,
			BottlesPerBox:     input.BottlesPerBox,
			ProductID:         product.ID,
			BottleCategory:    product.Category,
			LabelUsed: entity.LabelUsage{
				LabelID:        label.ID,
				BottleName:     label.BottleName,
				BottleCategory: label.BottleCategory,
				Quantity:       req.totalBottles,
			},
			CapUsed: entity.CapUsage{
				CapID:    cap.ID,
				NeckType: cap.NeckType,
				Size:     cap.Size,
				Color:    cap.Color,
				Quantity: req.totalBottles,
			},
			TotalBottles:   req.totalBottles,
			ShrinkUsed:     req.shrinkNeeded,
			PreformUsed:    req.totalBottles,
			LotUsage:       lotUsage,
			Remarks:        input.Remarks,
			ProductionDate: now,
			RecordedBy:     input.Actor,
			CreatedAt:      now,
		}
		if err := bottles.Create(rec); err != nil {
			return err
		}

		return products.AddBoxes(product.ID, &entity.ProductStockLog{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			Boxes:        decimal.NewFromInt(int64(input.Boxes)),
			ChangeType:   entity.StockChangeAddition,
			Message:      fmt.Sprintf("Producción: %d cajas agregadas", input.Boxes),
			ProductionID: rec.ID,
			UpdatedBy:    input.Actor,
			CreatedAt:    now,
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List corridas registradas, más recientes primero.
func (uc *RecordBottleUseCase) List(ctx context.Context, limit int) ([]*entity.BottleProduction, error) {
	return uc.bottles.List(limit)
}

// Get una corrida por id, con su traza de lotes.
func (uc *RecordBottleUseCase) Get(ctx context.Context, id string) (*entity.BottleProduction, error) {
	rec, err := uc.bottles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// decrementCap aplica el decremento condicional sobre el SKU de tapa y devuelve
// el SKU (para la foto de consumo). El repositorio reporta faltante con el
// disponible real sin mutar nada.
func decrementCap(caps repository.CapRepository, capID string, qty decimal.Decimal, actor string) (*entity.Cap, error) {
	if _, err := caps.TryDecrement(capID, qty, actor); err != nil {
		return nil, err
	}
	cap, err := caps.GetByID(capID)
	if err != nil {
		return nil, err
	}
	if cap == nil {
		return nil, domain.ErrNotFound
	}
	return cap, nil
}

// decrementLabel análogo a decrementCap para etiquetas.
func decrementLabel(labels repository.LabelRepository, labelID string, qty decimal.Decimal, actor string) (*entity.Label, error) {
	if _, err := labels.TryDecrement(labelID, qty, actor); err != nil {
		return nil, err
	}
	label, err := labels.GetByID(labelID)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, domain.ErrNotFound
	}
	return label, nil
}

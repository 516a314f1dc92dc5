package production

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ResourceAvailability disponibilidad de un recurso frente a lo requerido.
// NotFound marca un recurso sin SKU/material registrado: la corrida real
// fallaría con ErrNotFound, no con faltante de stock.
type ResourceAvailability struct {
	Resource   string
	Available  decimal.Decimal
	Required   decimal.Decimal
	Shortage   decimal.Decimal
	Sufficient bool
	NotFound   bool
}

// AvailabilityReport resultado del chequeo en seco de una corrida prospectiva.
type AvailabilityReport struct {
	TotalBottles decimal.Decimal
	Preform      ResourceAvailability
	Cap          ResourceAvailability
	Label        ResourceAvailability
	Shrink       ResourceAvailability
	CanProduce   bool
}

// AvailabilityUseCase corre los mismos cuatro chequeos de la corrida de botellas
// en modo lectura: sin transacción, sin bloqueo, sin mutación. Comparte
// computeRequirements y la suma FIFO con el orquestador para que el preview no
// pueda divergir del commit.
type AvailabilityUseCase struct {
	lots         repository.ProductionLotRepository
	caps         repository.CapRepository
	labels       repository.LabelRepository
	materials    repository.RawMaterialRepository
	shrinkPerBox decimal.Decimal
	shrinkCode   string
}

// NewAvailabilityUseCase construye el chequeo de disponibilidad.
func NewAvailabilityUseCase(
	lots repository.ProductionLotRepository,
	caps repository.CapRepository,
	labels repository.LabelRepository,
	materials repository.RawMaterialRepository,
	shrinkPerBox decimal.Decimal,
	shrinkCode string,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		lots:         lots,
		caps:         caps,
		labels:       labels,
		materials:    materials,
		shrinkPerBox: shrinkPerBox,
		shrinkCode:   shrinkCode,
	}
}

// Check evalúa cada pool de recursos contra el requerimiento derivado.
func (uc *AvailabilityUseCase) Check(ctx context.Context, input BottleRunInput) (*AvailabilityReport, error) {
	req, err := computeRequirements(input, uc.shrinkPerBox)
	if err != nil {
		return nil, err
	}

	report := &AvailabilityReport{TotalBottles: req.totalBottles}

	preformLots, err := uc.lots.ListByKey(entity.GoodTypePreform, req.outcomeKey)
	if err != nil {
		return nil, err
	}
	report.Preform = resourceAvailability(ResourcePreform, domainprod.TotalAvailable(preformLots), req.totalBottles)

	cap, err := uc.caps.GetByID(input.CapID)
	if err != nil {
		return nil, err
	}
	if cap == nil {
		return nil, domain.ErrNotFound
	}
	report.Cap = resourceAvailability(ResourceCap, cap.QuantityAvailable, req.totalBottles)

	label, err := uc.labels.GetByID(input.LabelID)
	if err != nil {
		return nil, err
	}
	if label == nil {
		return nil, domain.ErrNotFound
	}
	report.Label = resourceAvailability(ResourceLabel, label.QuantityAvailable, req.totalBottles)

	// El shrink roll sin registrar no es un faltante de stock: la corrida real
	// lo rechaza con ErrNotFound, y el reporte dice lo mismo.
	shrinkAvailable := decimal.Zero
	shrinkMissing := true
	if shrink, err := uc.materials.GetByCode(uc.shrinkCode); err != nil {
		return nil, err
	} else if shrink != nil && shrink.IsActive {
		shrinkAvailable = shrink.CurrentStock
		shrinkMissing = false
	}
	report.Shrink = resourceAvailability(ResourceShrink, shrinkAvailable, req.shrinkNeeded)
	report.Shrink.NotFound = shrinkMissing
	if shrinkMissing {
		report.Shrink.Sufficient = false
	}

	report.CanProduce = report.Preform.Sufficient &&
		report.Cap.Sufficient &&
		report.Label.Sufficient &&
		report.Shrink.Sufficient
	return report, nil
}

func resourceAvailability(resource string, available, required decimal.Decimal) ResourceAvailability {
	shortage := required.Sub(available)
	if shortage.IsNegative() {
		shortage = decimal.Zero
	}
	return ResourceAvailability{
		Resource:   resource,
		Available:  available,
		Required:   required,
		Shortage:   shortage,
		Sufficient: available.GreaterThanOrEqual(required),
	}
}

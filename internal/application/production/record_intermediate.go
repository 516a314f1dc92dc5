package production

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// counterLotNo nombre del contador atómico de números de lote.
const counterLotNo = "production_lot"

// MaterialLineInput línea de consumo de materia prima en una corrida intermedia.
type MaterialLineInput struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// IntermediateInput entrada de RecordIntermediateProduction.
// Para GoodType "cap", CapID identifica el SKU del pool que recibe lo producido.
type IntermediateInput struct {
	GoodType         string
	OutcomeKey       string
	CapID            string
	Materials        []MaterialLineInput
	QuantityProduced decimal.Decimal
	WastageReusable  decimal.Decimal
	WastageScrap     decimal.Decimal
	Remarks          string
	ProductionDate   time.Time
	Actor            string
}

// RecordIntermediateUseCase registra producción de bienes intermedios
// (preformas, tapas) como lotes discretos fechados, consumiendo materia prima
// y alimentando el libro de mermas, todo en una sola transacción.
type RecordIntermediateUseCase struct {
	txRunner TxRunner
	lots     repository.ProductionLotRepository
}

// NewRecordIntermediateUseCase construye el caso de uso.
func NewRecordIntermediateUseCase(txRunner TxRunner, lots repository.ProductionLotRepository) *RecordIntermediateUseCase {
	return &RecordIntermediateUseCase{txRunner: txRunner, lots: lots}
}

// Record valida la entrada y ejecuta los cinco pasos bajo una transacción:
// 1) verificar stock de cada línea de materia prima (el primer faltante aborta
// antes de cualquier mutación), 2) descontar todas las líneas, 3) crear el lote
// discreto con número de contador atómico, 4) anexar la bitácora inmutable,
// 5) registrar las mermas. Producción de tapas abona además el pool del SKU.
func (uc *RecordIntermediateUseCase) Record(ctx context.Context, input IntermediateInput) (*entity.ProductionLot, error) {
	if !entity.ValidGoodType(input.GoodType) {
		return nil, domain.ErrInvalidInput
	}
	outcomeKey := strings.ToLower(strings.TrimSpace(input.OutcomeKey))
	if outcomeKey == "" || len(input.Materials) == 0 || input.Actor == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.GoodType == entity.GoodTypeCap && input.CapID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.QuantityProduced.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}
	if input.WastageReusable.IsNegative() || input.WastageScrap.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	for _, line := range input.Materials {
		if line.MaterialID == "" || !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidQuantity
		}
	}
	// Líneas repetidas del mismo material se consolidan en una sola: el chequeo
	// de stock y el descuento operan sobre el total por material, y el lote
	// guarda una línea por material.
	merged := mergeMaterialLines(input.Materials)
	productionDate := input.ProductionDate
	if productionDate.IsZero() {
		productionDate = time.Now()
	}

	var lot *entity.ProductionLot
	err := uc.txRunner.RunIntermediate(ctx, func(
		materials repository.RawMaterialRepository,
		lots repository.ProductionLotRepository,
		logs repository.ProductionLogRepository,
		wastages repository.WastageRepository,
		caps repository.CapRepository,
		counters repository.CounterRepository,
	) error {
		// Paso 1: validar todas las líneas con la fila bloqueada.
		// El primer material deficiente aborta sin haber descontado nada.
		locked := make([]*entity.RawMaterial, len(merged))
		for i, line := range merged {
			material, err := materials.GetForUpdate(line.MaterialID)
			if err != nil {
				return err
			}
			if material == nil || !material.IsActive {
				return domain.ErrNotFound
			}
			if material.CurrentStock.LessThan(line.Quantity) {
				return domain.NewInsufficientStock(material.ItemName, material.CurrentStock, line.Quantity)
			}
			locked[i] = material
		}

		// Paso 2: descontar todas las líneas.
		for i, line := range merged {
			if err := materials.UpdateStock(line.MaterialID, locked[i].CurrentStock.Sub(line.Quantity)); err != nil {
				return err
			}
		}

		// Paso 3: lote discreto nuevo; el número sale del contador atómico,
		// nunca de "leer máximo y sumar uno".
		lotNo, err := counters.Next(counterLotNo)
		if err != nil {
			return err
		}
		lines := make([]entity.MaterialLine, len(merged))
		for i, line := range merged {
			lines[i] = entity.MaterialLine{MaterialID: line.MaterialID, Quantity: line.Quantity}
		}
		lot = &entity.ProductionLot{
			ID:               uuid.New().String(),
			LotNo:            lotNo,
			GoodType:         input.GoodType,
			OutcomeKey:       outcomeKey,
			QuantityProduced: input.QuantityProduced,
			WastageReusable:  input.WastageReusable,
			WastageScrap:     input.WastageScrap,
			ConsumedQty:      decimal.Zero,
			Materials:        lines,
			Remarks:          input.Remarks,
			ProductionDate:   productionDate,
			RecordedBy:       input.Actor,
			CreatedAt:        time.Now(),
		}
		if err := lots.Create(lot); err != nil {
			return err
		}

		// Paso 4: bitácora punto-en-el-tiempo, independiente del lote.
		if err := logs.Create(&entity.ProductionLog{
			ID:               uuid.New().String(),
			LotID:            lot.ID,
			GoodType:         input.GoodType,
			OutcomeKey:       outcomeKey,
			Materials:        lines,
			QuantityProduced: input.QuantityProduced,
			WastageReusable:  input.WastageReusable,
			WastageScrap:     input.WastageScrap,
			Remarks:          input.Remarks,
			ProductionDate:   productionDate,
			RecordedBy:       input.Actor,
			CreatedAt:        time.Now(),
		}); err != nil {
			return err
		}

		// Paso 5: mermas al libro.
		source := entity.SourcePreform
		if input.GoodType == entity.GoodTypeCap {
			source = entity.SourceCap
		}
		if input.WastageReusable.IsPositive() || input.WastageScrap.IsPositive() {
			remark := "Generado en producción de " + outcomeKey
			if _, err := recordWastageEntries(wastages, source, input.WastageReusable, input.WastageScrap, remark, input.Actor, productionDate); err != nil {
				return err
			}
		}

		// Lo producido de tapas entra al pool discreto del SKU.
		if input.GoodType == entity.GoodTypeCap {
			if _, err := caps.Increment(input.CapID, input.QuantityProduced, input.Actor); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lot, nil
}

// mergeMaterialLines consolida líneas del mismo material sumando cantidades,
// preservando el orden de primera aparición.
func mergeMaterialLines(lines []MaterialLineInput) []MaterialLineInput {
	index := make(map[string]int, len(lines))
	merged := make([]MaterialLineInput, 0, len(lines))
	for _, line := range lines {
		if i, ok := index[line.MaterialID]; ok {
			merged[i].Quantity = merged[i].Quantity.Add(line.Quantity)
			continue
		}
		index[line.MaterialID] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// GetAvailable suma el disponible de todos los lotes del outcome key, con piso en cero.
func (uc *RecordIntermediateUseCase) GetAvailable(ctx context.Context, goodType, outcomeKey string) (decimal.Decimal, error) {
	if !entity.ValidGoodType(goodType) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	lots, err := uc.lots.ListByKey(goodType, strings.ToLower(strings.TrimSpace(outcomeKey)))
	if err != nil {
		return decimal.Zero, err
	}
	return domainprod.TotalAvailable(lots), nil
}

// ListLots devuelve los lotes del outcome key en orden FIFO (para reportes).
func (uc *RecordIntermediateUseCase) ListLots(ctx context.Context, goodType, outcomeKey string) ([]*entity.ProductionLot, error) {
	if !entity.ValidGoodType(goodType) {
		return nil, domain.ErrInvalidInput
	}
	return uc.lots.ListByKey(goodType, strings.ToLower(strings.TrimSpace(outcomeKey)))
}

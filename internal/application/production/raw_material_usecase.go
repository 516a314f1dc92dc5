package production

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Modos de ajuste manual de stock.
const (
	AdjustAdd    = "add"
	AdjustReduce = "reduce"
	AdjustSet    = "set"
)

// RawMaterialUseCase libro mayor de materia prima: entradas, ajustes manuales y
// uso directo. Toda mutación de CurrentStock queda pareada con una
// RawMaterialEntry de auditoría.
type RawMaterialUseCase struct {
	txRunner  TxRunner
	materials repository.RawMaterialRepository
	entries   repository.RawMaterialEntryRepository
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(txRunner TxRunner, materials repository.RawMaterialRepository, entries repository.RawMaterialEntryRepository) *RawMaterialUseCase {
	return &RawMaterialUseCase{txRunner: txRunner, materials: materials, entries: entries}
}

// AddEntry registra una entrada de materia prima (recepción) y suma al stock.
func (uc *RawMaterialUseCase) AddEntry(ctx context.Context, materialID string, qty decimal.Decimal, remarks, actor string) (*entity.RawMaterialEntry, error) {
	if materialID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	var created *entity.RawMaterialEntry
	err := uc.txRunner.RunMaterials(ctx, func(
		materials repository.RawMaterialRepository,
		entries repository.RawMaterialEntryRepository,
		_ repository.DirectUsageRepository,
	) error {
		// Bloquea la fila del material para serializar mutaciones concurrentes
		material, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if err := materials.UpdateStock(materialID, material.CurrentStock.Add(qty)); err != nil {
			return err
		}
		created = &entity.RawMaterialEntry{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Quantity:   qty,
			Remarks:    remarks,
			EnteredBy:  actor,
			EntryDate:  time.Now(),
		}
		return entries.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Adjust corrige el stock manualmente (add, reduce o set). reduce/set que dejen
// el stock negativo fallan con ErrInvalidAdjustment; el asiento de auditoría
// queda marcado como ajuste manual con la cantidad con signo (set registra el delta).
func (uc *RawMaterialUseCase) Adjust(ctx context.Context, materialID, mode string, qty decimal.Decimal, reason, actor string) (*entity.RawMaterial, error) {
	if materialID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch mode {
	case AdjustAdd, AdjustReduce:
		if !qty.IsPositive() {
			return nil, domain.ErrInvalidQuantity
		}
	case AdjustSet:
		if qty.IsNegative() {
			return nil, domain.ErrInvalidAdjustment
		}
	default:
		return nil, domain.ErrInvalidAdjustment
	}

	var updated *entity.RawMaterial
	err := uc.txRunner.RunMaterials(ctx, func(
		materials repository.RawMaterialRepository,
		entries repository.RawMaterialEntryRepository,
		_ repository.DirectUsageRepository,
	) error {
		material, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		newStock := material.CurrentStock
		var delta decimal.Decimal
		switch mode {
		case AdjustAdd:
			newStock = newStock.Add(qty)
			delta = qty
		case AdjustReduce:
			newStock = newStock.Sub(qty)
			delta = qty.Neg()
		case AdjustSet:
			delta = qty.Sub(newStock)
			newStock = qty
		}
		if newStock.IsNegative() {
			return domain.ErrInvalidAdjustment
		}

		if err := materials.UpdateStock(materialID, newStock); err != nil {
			return err
		}
		entry := &entity.RawMaterialEntry{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Quantity:   delta,
			Remarks:    fmt.Sprintf("Ajuste manual (%s): %s %s. Motivo: %s", mode, qty.String(), material.Unit, reason),
			Manual:     true,
			EnteredBy:  actor,
			EntryDate:  time.Now(),
		}
		if err := entries.Create(entry); err != nil {
			return err
		}
		material.CurrentStock = newStock
		updated = material
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RecordDirectUsage descuenta materia prima consumida fuera de producción
// (limpieza, muestras) dejando el registro de propósito y el asiento de auditoría.
func (uc *RawMaterialUseCase) RecordDirectUsage(ctx context.Context, materialID string, qty decimal.Decimal, purpose, remarks, actor string) (*entity.DirectUsage, error) {
	if materialID == "" || purpose == "" {
		return nil, domain.ErrInvalidInput
	}
	if !qty.IsPositive() {
		return nil, domain.ErrInvalidQuantity
	}

	var created *entity.DirectUsage
	err := uc.txRunner.RunMaterials(ctx, func(
		materials repository.RawMaterialRepository,
		entries repository.RawMaterialEntryRepository,
		usages repository.DirectUsageRepository,
	) error {
		if _, err := deductMaterial(materials, materialID, qty); err != nil {
			return err
		}
		created = &entity.DirectUsage{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Quantity:   qty,
			Purpose:    purpose,
			Remarks:    remarks,
			UsageDate:  time.Now(),
			RecordedBy: actor,
		}
		if err := usages.Create(created); err != nil {
			return err
		}
		return entries.Create(&entity.RawMaterialEntry{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			Quantity:   qty.Neg(),
			Remarks:    fmt.Sprintf("Uso directo: %s", purpose),
			EnteredBy:  actor,
			EntryDate:  time.Now(),
			Manual:     false,
		})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetMaterial lectura simple por id.
func (uc *RawMaterialUseCase) GetMaterial(ctx context.Context, materialID string) (*entity.RawMaterial, error) {
	material, err := uc.materials.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return material, nil
}

// ListEntries historial de auditoría de un material, más reciente primero.
func (uc *RawMaterialUseCase) ListEntries(ctx context.Context, materialID string, limit int) ([]*entity.RawMaterialEntry, error) {
	if materialID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.entries.ListByMaterial(materialID, limit)
}

// ListLowStock materiales activos en o por debajo de su punto de reorden.
func (uc *RawMaterialUseCase) ListLowStock(ctx context.Context) ([]*entity.RawMaterial, error) {
	return uc.materials.ListLowStock()
}

// deductMaterial bloquea la fila del material, verifica disponibilidad y descuenta.
// Compartido por uso directo y producción intermedia; debe correr dentro de una tx.
func deductMaterial(materials repository.RawMaterialRepository, materialID string, qty decimal.Decimal) (*entity.RawMaterial, error) {
	material, err := materials.GetForUpdate(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil || !material.IsActive {
		return nil, domain.ErrNotFound
	}
	if material.CurrentStock.LessThan(qty) {
		return nil, domain.NewInsufficientStock(material.ItemName, material.CurrentStock, qty)
	}
	newStock := material.CurrentStock.Sub(qty)
	if err := materials.UpdateStock(material.ID, newStock); err != nil {
		return nil, err
	}
	material.CurrentStock = newStock
	return material, nil
}

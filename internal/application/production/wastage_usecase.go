package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// WastageUseCase libro de mermas: registro por tipo y reutilización posterior.
// Es contabilidad pura; no mueve material entre pools (eso lo hace el caller
// cuando la merma reutilizable vuelve a entrar a una corrida).
type WastageUseCase struct {
	wastages repository.WastageRepository
}

// NewWastageUseCase construye el caso de uso.
func NewWastageUseCase(wastages repository.WastageRepository) *WastageUseCase {
	return &WastageUseCase{wastages: wastages}
}

// Record crea hasta dos entradas de merma (reutilizable y scrap) según qué
// cantidades sean positivas. Al menos una debe serlo.
func (uc *WastageUseCase) Record(ctx context.Context, source string, reusableQty, scrapQty decimal.Decimal, remarks, actor string) ([]*entity.Wastage, error) {
	if !entity.ValidSource(source) {
		return nil, domain.ErrInvalidInput
	}
	if reusableQty.IsNegative() || scrapQty.IsNegative() {
		return nil, domain.ErrInvalidQuantity
	}
	if !reusableQty.IsPositive() && !scrapQty.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	return recordWastageEntries(uc.wastages, source, reusableQty, scrapQty, remarks, actor, time.Now())
}

// RegisterReuse acumula una reutilización sobre una merma existente.
// Falla con ExceedsGeneratedError si el acumulado supera lo generado.
func (uc *WastageUseCase) RegisterReuse(ctx context.Context, wastageID string, qty decimal.Decimal, reference, remarks string) (*entity.Wastage, error) {
	if wastageID == "" {
		return nil, domain.ErrInvalidInput
	}
	w, err := uc.wastages.GetByID(wastageID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	if err := w.ApplyReuse(qty, reference); err != nil {
		return nil, err
	}
	if remarks != "" {
		w.Remarks = remarks
	}
	if err := uc.wastages.UpdateReuse(w); err != nil {
		return nil, err
	}
	return w, nil
}

// Report lista mermas con filtros opcionales de fuente, tipo y rango de fechas.
func (uc *WastageUseCase) Report(ctx context.Context, filter repository.WastageFilter) ([]*entity.Wastage, error) {
	return uc.wastages.List(filter)
}

// recordWastageEntries inserta las entradas de merma usando el repositorio
// recibido, de modo que producción intermedia pueda reutilizarlo dentro de su
// propia transacción.
func recordWastageEntries(wastages repository.WastageRepository, source string, reusableQty, scrapQty decimal.Decimal, remarks, actor string, date time.Time) ([]*entity.Wastage, error) {
	var created []*entity.Wastage

	if reusableQty.IsPositive() {
		w := &entity.Wastage{
			ID:                uuid.New().String(),
			Type:              entity.WastageReusable,
			Source:            source,
			QuantityGenerated: reusableQty,
			QuantityReused:    decimal.Zero,
			QuantityScrapped:  reusableQty,
			Remarks:           remarks,
			RecordedBy:        actor,
			Date:              date,
		}
		if err := wastages.Create(w); err != nil {
			return nil, err
		}
		created = append(created, w)
	}

	if scrapQty.IsPositive() {
		w := &entity.Wastage{
			ID:                uuid.New().String(),
			Type:              entity.WastageScrap,
			Source:            source,
			QuantityGenerated: scrapQty,
			QuantityReused:    decimal.Zero,
			QuantityScrapped:  scrapQty,
			Remarks:           remarks,
			RecordedBy:        actor,
			Date:              date,
		}
		if err := wastages.Create(w); err != nil {
			return nil, err
		}
		created = append(created, w)
	}

	return created, nil
}

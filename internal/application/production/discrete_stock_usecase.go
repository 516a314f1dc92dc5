package production

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// DiscreteStockUseCase gestión manual de un pool discreto (tapas o etiquetas):
// abonos y fijación directa del disponible. El descuento de producción no pasa
// por aquí; lo hace el orquestador con TryDecrement dentro de su transacción.
type DiscreteStockUseCase struct {
	pool     repository.DiscretePoolRepository
	resource string
}

// NewDiscreteStockUseCase construye la gestión del pool. resource es el nombre
// que aparece en errores de faltante ("cap" o "label").
func NewDiscreteStockUseCase(pool repository.DiscretePoolRepository, resource string) *DiscreteStockUseCase {
	return &DiscreteStockUseCase{pool: pool, resource: resource}
}

// TryDecrement descuenta si alcanza; expuesto para consumos manuales puntuales.
func (uc *DiscreteStockUseCase) TryDecrement(ctx context.Context, itemID string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	if itemID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !qty.IsPositive() {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return uc.pool.TryDecrement(itemID, qty, actor)
}

// Increment abona unidades al pool.
func (uc *DiscreteStockUseCase) Increment(ctx context.Context, itemID string, qty decimal.Decimal, actor string) (decimal.Decimal, error) {
	if itemID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if !qty.IsPositive() {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return uc.pool.Increment(itemID, qty, actor)
}

// SetAvailable fija el disponible del SKU (conteo físico).
func (uc *DiscreteStockUseCase) SetAvailable(ctx context.Context, itemID string, qty decimal.Decimal, actor string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}
	if qty.IsNegative() {
		return domain.ErrInvalidQuantity
	}
	return uc.pool.SetAvailable(itemID, qty, actor)
}

package repository

import "github.com/shopspring/decimal"

// DiscretePoolRepository operaciones comunes de un pool discreto de stock
// (tapas y etiquetas). TryDecrement debe ser un primitivo atómico único
// ("descontar si alcanza"), sin ventana leer-luego-escribir.
type DiscretePoolRepository interface {
	// TryDecrement descuenta qty solo si quantity_available >= qty y devuelve el
	// nuevo disponible. Si no alcanza devuelve InsufficientStockError sin tocar
	// el stock; si el SKU no existe o está inactivo, ErrNotFound.
	TryDecrement(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error)
	Increment(id string, qty decimal.Decimal, actor string) (decimal.Decimal, error)
	SetAvailable(id string, qty decimal.Decimal, actor string) error
}

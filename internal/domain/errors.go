package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidAdjustment = errors.New("ajuste de stock inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrExceedsGenerated  = errors.New("la reutilización excede lo generado")
	ErrTxAborted         = errors.New("transacción abortada")
)

// InsufficientStockError detalla qué recurso faltó y por cuánto.
// Envuelve ErrInsufficientStock para que errors.Is siga funcionando
// en el mapeo HTTP y en los tests.
type InsufficientStockError struct {
	Resource  string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente de %s: disponible %s, requerido %s",
		e.Resource, e.Available.String(), e.Required.String())
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// NewInsufficientStock construye el error de faltante para un recurso.
func NewInsufficientStock(resource string, available, required decimal.Decimal) error {
	return &InsufficientStockError{Resource: resource, Available: available, Required: required}
}

// ExceedsGeneratedError detalla un intento de reutilizar más merma de la generada.
type ExceedsGeneratedError struct {
	Generated     decimal.Decimal
	AlreadyReused decimal.Decimal
	Requested     decimal.Decimal
}

func (e *ExceedsGeneratedError) Error() string {
	return fmt.Sprintf("no se puede reutilizar más merma de la generada: generada %s, ya reutilizada %s, solicitada %s",
		e.Generated.String(), e.AlreadyReused.String(), e.Requested.String())
}

func (e *ExceedsGeneratedError) Unwrap() error { return ErrExceedsGenerated }

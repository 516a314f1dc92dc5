package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto terminado (categoría de botella) con su stock en cajas.
type Product struct {
	ID            string
	Name          string
	Category      string
	BottlesPerBox int
	Boxes         decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Tipos de cambio sobre el stock de producto terminado.
const (
	StockChangeAddition   = "addition"
	StockChangeReduction  = "reduction"
	StockChangeAdjustment = "adjustment"
)

// ProductStockLog es el historial de movimientos del stock de producto terminado.
type ProductStockLog struct {
	ID           string
	ProductID    string
	Boxes        decimal.Decimal
	ChangeType   string
	Message      string
	ProductionID string
	UpdatedBy    string
	CreatedAt    time.Time
}

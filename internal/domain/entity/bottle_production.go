package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LabelUsage es la foto del consumo de etiquetas en una corrida de botellas.
type LabelUsage struct {
	LabelID        string
	BottleName     string
	BottleCategory string
	Quantity       decimal.Decimal
}

// CapUsage es la foto del consumo de tapas en una corrida de botellas.
type CapUsage struct {
	CapID    string
	NeckType string
	Size     string
	Color    string
	Quantity decimal.Decimal
}

// LotUsage es una línea de la traza FIFO: cuánto se tomó de qué lote de preformas.
type LotUsage struct {
	LotID          string
	LotNo          int64
	Quantity       decimal.Decimal
	ProductionDate time.Time
}

// BottleProduction es el registro inmutable de una corrida de producto terminado.
// Prueba de dónde salió cada unidad: traza de lotes de preformas, tapas, etiquetas
// y shrink consumidos. Nunca se modifica después de creado.
type BottleProduction struct {
	ID                string
	PreformOutcomeKey string
	BoxesProduced     int
	BottlesPerBox     int
	ProductID         string
	BottleCategory    string
	LabelUsed         LabelUsage
	CapUsed           CapUsage
	TotalBottles      decimal.Decimal
	ShrinkUsed        decimal.Decimal
	PreformUsed       decimal.Decimal
	LotUsage          []LotUsage
	Remarks           string
	ProductionDate    time.Time
	RecordedBy        string
	CreatedAt         time.Time
}

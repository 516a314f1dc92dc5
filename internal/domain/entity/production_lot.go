package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de bien intermedio.
const (
	GoodTypePreform = "preform"
	GoodTypeCap     = "cap"
)

// MaterialLine es una línea de consumo de materia prima dentro de un lote.
type MaterialLine struct {
	MaterialID string
	Quantity   decimal.Decimal
}

// ProductionLot es un lote discreto de producción intermedia (preformas o tapas).
// Cada evento de registro crea un lote nuevo con fecha propia; el lote es inmutable
// salvo ConsumedQty, que crece cuando producción de botellas lo consume (FIFO).
// Invariante: Available() >= 0 en todo estado observable.
type ProductionLot struct {
	ID               string
	LotNo            int64
	GoodType         string
	OutcomeKey       string
	QuantityProduced decimal.Decimal
	WastageReusable  decimal.Decimal
	WastageScrap     decimal.Decimal
	ConsumedQty      decimal.Decimal
	Materials        []MaterialLine
	Remarks          string
	ProductionDate   time.Time
	RecordedBy       string
	CreatedAt        time.Time
}

// Available devuelve lo consumible del lote:
// producido - merma reutilizable - merma scrap - consumido, con piso en cero.
func (l *ProductionLot) Available() decimal.Decimal {
	avail := l.QuantityProduced.
		Sub(l.WastageReusable).
		Sub(l.WastageScrap).
		Sub(l.ConsumedQty)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// ValidGoodType indica si el tipo de bien intermedio es conocido.
func ValidGoodType(goodType string) bool {
	return goodType == GoodTypePreform || goodType == GoodTypeCap
}

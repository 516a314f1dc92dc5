package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
)

// Tipos de merma.
const (
	WastageReusable = "reusable" // puede volver a entrar a producción
	WastageScrap    = "scrap"    // sin camino de reutilización
)

// Fuentes de merma.
const (
	SourcePreform = "preform"
	SourceCap     = "cap"
	SourceBottle  = "bottle"
)

// Wastage es una entrada del libro de mermas. Se crea al registrar producción
// (o manualmente) y solo admite una mutación posterior: incrementar QuantityReused.
// Invariante: QuantityReused <= QuantityGenerated y
// QuantityScrapped == QuantityGenerated - QuantityReused.
type Wastage struct {
	ID                string
	Type              string
	Source            string
	QuantityGenerated decimal.Decimal
	QuantityReused    decimal.Decimal
	QuantityScrapped  decimal.Decimal
	ReuseReference    string
	Remarks           string
	RecordedBy        string
	Date              time.Time
}

// ApplyReuse registra una reutilización adicional manteniendo la derivación
// scrapped = generated - reused. Falla si el acumulado supera lo generado.
func (w *Wastage) ApplyReuse(qty decimal.Decimal, reference string) error {
	if !qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	total := w.QuantityReused.Add(qty)
	if total.GreaterThan(w.QuantityGenerated) {
		return &domain.ExceedsGeneratedError{
			Generated:     w.QuantityGenerated,
			AlreadyReused: w.QuantityReused,
			Requested:     qty,
		}
	}
	w.QuantityReused = total
	w.QuantityScrapped = w.QuantityGenerated.Sub(total)
	if reference != "" {
		w.ReuseReference = reference
	}
	return nil
}

// ValidSource indica si la fuente de merma es conocida.
func ValidSource(source string) bool {
	switch source {
	case SourcePreform, SourceCap, SourceBottle:
		return true
	}
	return false
}

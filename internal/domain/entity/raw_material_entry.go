package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterialEntry es el registro inmutable de auditoría de cada movimiento de
// materia prima: entradas de compra (cantidad positiva), ajustes manuales
// (Manual=true, cantidad con signo) y consumos por uso directo.
type RawMaterialEntry struct {
	ID         string
	MaterialID string
	Quantity   decimal.Decimal
	Remarks    string
	Manual     bool
	EnteredBy  string
	EntryDate  time.Time
}

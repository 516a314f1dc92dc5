package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida admitidas para materia prima.
const (
	UnitKg  = "Kg"
	UnitGm  = "Gm"
	UnitNos = "Nos"
)

// RawMaterial representa una materia prima (resina PET, shrink roll, cajas de tapas, etc.)
// con su stock vigente. El stock solo se mueve vía entradas, consumos de producción,
// uso directo o ajustes manuales; nunca queda negativo.
type RawMaterial struct {
	ID            string
	ItemName      string
	ItemCode      string
	Subcategory   string
	Unit          string
	Supplier      string
	MinStockLevel decimal.Decimal
	CurrentStock  decimal.Decimal
	Remarks       string
	IsActive      bool
	CreatedAt     time.Time
}

// BelowReorderPoint indica si el stock está en o por debajo del punto de reorden.
func (m *RawMaterial) BelowReorderPoint() bool {
	return m.CurrentStock.LessThanOrEqual(m.MinStockLevel)
}

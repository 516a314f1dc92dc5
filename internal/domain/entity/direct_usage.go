package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DirectUsage registra consumo de materia prima fuera de producción
// (limpieza, mantenimiento, muestras), con su propósito declarado.
type DirectUsage struct {
	ID         string
	MaterialID string
	Quantity   decimal.Decimal
	Purpose    string
	Remarks    string
	UsageDate  time.Time
	RecordedBy string
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cuello admitidos para tapas.
const (
	NeckNarrow = "narrow neck"
	NeckWide   = "wide neck"
)

// Cap es un SKU de tapa en el pool discreto de stock. La identidad la da la
// combinación única (NeckType, Size, Color); QuantityAvailable solo se mueve
// por producción de tapas, descuento condicional de producción de botellas
// o gestión manual.
type Cap struct {
	ID                string
	NeckType          string
	Size              string
	Color             string
	QuantityAvailable decimal.Decimal
	Remarks           string
	IsActive          bool
	CreatedBy         string
	LastUpdatedBy     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Key devuelve la identidad legible del SKU (ej. "narrow neck/28mm/White").
func (c *Cap) Key() string {
	return c.NeckType + "/" + c.Size + "/" + c.Color
}

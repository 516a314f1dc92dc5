package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Label es un SKU de etiqueta en el pool discreto de stock, identificado por la
// combinación única (BottleCategory, BottleName), ej. ("500ml", "Reva").
type Label struct {
	ID                string
	BottleCategory    string
	BottleName        string
	QuantityAvailable decimal.Decimal
	Remarks           string
	IsActive          bool
	CreatedBy         string
	LastUpdatedBy     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Key devuelve la identidad legible del SKU (ej. "500ml/Reva").
func (l *Label) Key() string {
	return l.BottleCategory + "/" + l.BottleName
}

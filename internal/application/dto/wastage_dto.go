package dto

import "github.com/shopspring/decimal"

// RecordWastageRequest body para POST /api/wastages. Al menos una de las dos
// cantidades debe ser positiva.
type RecordWastageRequest struct {
	Source      string          `json:"source"` // preform|cap|bottle
	ReusableQty decimal.Decimal `json:"reusable_qty"`
	ScrapQty    decimal.Decimal `json:"scrap_qty"`
	Remarks     string          `json:"remarks,omitempty"`
	Actor       string          `json:"actor"`
}

// RegisterReuseRequest body para POST /api/wastages/:id/reuse.
type RegisterReuseRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference,omitempty"` // corrida que reabsorbió la merma
	Remarks   string          `json:"remarks,omitempty"`
}

// WastageResponse entrada del libro de mermas.
type WastageResponse struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Source            string          `json:"source"`
	QuantityGenerated decimal.Decimal `json:"quantity_generated"`
	QuantityReused    decimal.Decimal `json:"quantity_reused"`
	QuantityScrapped  decimal.Decimal `json:"quantity_scrapped"`
	ReuseReference    string          `json:"reuse_reference,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	RecordedBy        string          `json:"recorded_by"`
	Date              string          `json:"date"`
}

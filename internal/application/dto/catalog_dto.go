package dto

import "github.com/shopspring/decimal"

// CreateCapRequest body para POST /api/caps. (neck_type, size, color) es único.
type CreateCapRequest struct {
	NeckType   string          `json:"neck_type"` // "narrow neck" | "wide neck"
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	InitialQty decimal.Decimal `json:"initial_qty"`
	Remarks    string          `json:"remarks,omitempty"`
	Actor      string          `json:"actor"`
}

// CapResponse SKU de tapa en respuestas.
type CapResponse struct {
	ID                string          `json:"id"`
	NeckType          string          `json:"neck_type"`
	Size              string          `json:"size"`
	Color             string          `json:"color"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	Remarks           string          `json:"remarks,omitempty"`
	IsActive          bool            `json:"is_active"`
}

// CreateLabelRequest body para POST /api/labels. (bottle_category, bottle_name) es único.
type CreateLabelRequest struct {
	BottleCategory string          `json:"bottle_category"`
	BottleName     string          `json:"bottle_name"`
	InitialQty     decimal.Decimal `json:"initial_qty"`
	Remarks        string          `json:"remarks,omitempty"`
	Actor          string          `json:"actor"`
}

// LabelResponse SKU de etiqueta en respuestas.
type LabelResponse struct {
	ID                string          `json:"id"`
	BottleCategory    string          `json:"bottle_category"`
	BottleName        string          `json:"bottle_name"`
	QuantityAvailable decimal.Decimal `json:"quantity_available"`
	Remarks           string          `json:"remarks,omitempty"`
	IsActive          bool            `json:"is_active"`
}

// PoolMovementRequest body para abonos y fijaciones sobre un pool discreto
// (POST /api/caps/:id/increment, PUT /api/caps/:id/stock y análogos de labels).
type PoolMovementRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Actor    string          `json:"actor"`
}

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	BottlesPerBox int    `json:"bottles_per_box"`
}

// ProductResponse producto terminado con su stock en cajas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	BottlesPerBox int             `json:"bottles_per_box"`
	Boxes         decimal.Decimal `json:"boxes"`
	IsActive      bool            `json:"is_active"`
}

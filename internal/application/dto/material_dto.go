package dto

import "github.com/shopspring/decimal"

// CreateRawMaterialRequest body para POST /api/raw-materials.
type CreateRawMaterialRequest struct {
	ItemName      string          `json:"item_name"`
	ItemCode      string          `json:"item_code"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Unit          string          `json:"unit,omitempty"` // Kg|Gm|Nos; default Kg
	Supplier      string          `json:"supplier,omitempty"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Remarks       string          `json:"remarks,omitempty"`
}

// UpdateRawMaterialRequest body para PUT /api/raw-materials/:id (catálogo, no stock).
type UpdateRawMaterialRequest struct {
	ItemName      string          `json:"item_name"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Remarks       string          `json:"remarks,omitempty"`
}

// RawMaterialResponse materia prima en respuestas.
type RawMaterialResponse struct {
	ID            string          `json:"id"`
	ItemName      string          `json:"item_name"`
	ItemCode      string          `json:"item_code"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Unit          string          `json:"unit"`
	Supplier      string          `json:"supplier,omitempty"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	LowStock      bool            `json:"low_stock"`
	Remarks       string          `json:"remarks,omitempty"`
	IsActive      bool            `json:"is_active"`
}

// AddEntryRequest body para POST /api/raw-materials/:id/entries.
type AddEntryRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Remarks  string          `json:"remarks,omitempty"`
	Actor    string          `json:"actor"`
}

// AdjustStockRequest body para POST /api/raw-materials/:id/adjust.
// Mode: add|reduce|set.
type AdjustStockRequest struct {
	Mode     string          `json:"mode"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
	Actor    string          `json:"actor"`
}

// DirectUsageRequest body para POST /api/raw-materials/:id/direct-usage.
type DirectUsageRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Purpose  string          `json:"purpose"`
	Remarks  string          `json:"remarks,omitempty"`
	Actor    string          `json:"actor"`
}

// EntryResponse asiento de auditoría del libro de materia prima.
type EntryResponse struct {
	ID         string          `json:"id"`
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"` // con signo: negativo = salida
	Remarks    string          `json:"remarks,omitempty"`
	Manual     bool            `json:"manual"`
	EnteredBy  string          `json:"entered_by"`
	EntryDate  string          `json:"entry_date"`
}

package dto

import "github.com/shopspring/decimal"

// ── Producción intermedia ─────────────────────────────────────────────────────

// MaterialLineRequest línea de consumo de materia prima.
type MaterialLineRequest struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// IntermediateProductionRequest body para POST /api/production/intermediate.
// CapID es obligatorio cuando good_type es "cap": identifica el SKU del pool
// que recibe lo producido.
type IntermediateProductionRequest struct {
	GoodType         string                `json:"good_type"` // preform|cap
	OutcomeKey       string                `json:"outcome_key"`
	CapID            string                `json:"cap_id,omitempty"`
	Materials        []MaterialLineRequest `json:"materials"`
	QuantityProduced decimal.Decimal       `json:"quantity_produced"`
	WastageReusable  decimal.Decimal       `json:"wastage_reusable"`
	WastageScrap     decimal.Decimal       `json:"wastage_scrap"`
	Remarks          string                `json:"remarks,omitempty"`
	ProductionDate   string                `json:"production_date,omitempty"` // YYYY-MM-DD; vacío = hoy
	Actor            string                `json:"actor"`
}

// LotResponse lote discreto en respuestas, con el disponible ya derivado.
type LotResponse struct {
	ID               string          `json:"id"`
	LotNo            int64           `json:"lot_no"`
	GoodType         string          `json:"good_type"`
	OutcomeKey       string          `json:"outcome_key"`
	QuantityProduced decimal.Decimal `json:"quantity_produced"`
	WastageReusable  decimal.Decimal `json:"wastage_reusable"`
	WastageScrap     decimal.Decimal `json:"wastage_scrap"`
	ConsumedQty      decimal.Decimal `json:"consumed_qty"`
	Available        decimal.Decimal `json:"available"`
	Remarks          string          `json:"remarks,omitempty"`
	ProductionDate   string          `json:"production_date"`
	RecordedBy       string          `json:"recorded_by"`
}

// ── Corrida de botellas ───────────────────────────────────────────────────────

// BottleRunRequest body para POST /api/production/bottles y para el chequeo en
// seco POST /api/production/bottles/check (check ignora remarks y actor).
type BottleRunRequest struct {
	PreformOutcomeKey string `json:"preform_outcome_key"`
	Boxes             int    `json:"boxes"`
	BottlesPerBox     int    `json:"bottles_per_box"`
	ProductID         string `json:"product_id"`
	LabelID           string `json:"label_id"`
	CapID             string `json:"cap_id"`
	Remarks           string `json:"remarks,omitempty"`
	Actor             string `json:"actor,omitempty"`
}

// LotUsageDTO línea de la traza FIFO de una corrida.
type LotUsageDTO struct {
	LotID          string          `json:"lot_id"`
	LotNo          int64           `json:"lot_no"`
	Quantity       decimal.Decimal `json:"quantity"`
	ProductionDate string          `json:"production_date"`
}

// BottleProductionResponse registro de una corrida con su traza completa.
type BottleProductionResponse struct {
	ID                string          `json:"id"`
	PreformOutcomeKey string          `json:"preform_outcome_key"`
	BoxesProduced     int             `json:"boxes_produced"`
	BottlesPerBox     int             `json:"bottles_per_box"`
	ProductID         string          `json:"product_id"`
	BottleCategory    string          `json:"bottle_category"`
	TotalBottles      decimal.Decimal `json:"total_bottles"`
	ShrinkUsed        decimal.Decimal `json:"shrink_used"`
	PreformUsed       decimal.Decimal `json:"preform_used"`
	CapID             string          `json:"cap_id"`
	LabelID           string          `json:"label_id"`
	LotUsage          []LotUsageDTO   `json:"lot_usage"`
	Remarks           string          `json:"remarks,omitempty"`
	ProductionDate    string          `json:"production_date"`
	RecordedBy        string          `json:"recorded_by"`
}

// ── Chequeo de disponibilidad ─────────────────────────────────────────────────

// ResourceAvailabilityDTO disponibilidad de un recurso frente a lo requerido.
type ResourceAvailabilityDTO struct {
	Resource   string          `json:"resource"`
	Available  decimal.Decimal `json:"available"`
	Required   decimal.Decimal `json:"required"`
	Shortage   decimal.Decimal `json:"shortage"`
	NotFound   bool            `json:"not_found,omitempty"`
	Sufficient bool            `json:"sufficient"`
}

// AvailabilityResponse resultado del chequeo en seco.
type AvailabilityResponse struct {
	TotalBottles decimal.Decimal           `json:"total_bottles"`
	Resources    []ResourceAvailabilityDTO `json:"resources"`
	CanProduce   bool                      `json:"can_produce"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionLog es la bitácora inmutable de cada evento de producción intermedia,
// independiente del lote: nunca se agrega ni se corrige, sirve de auditoría
// punto-en-el-tiempo aun si el lote se consume por completo.
type ProductionLog struct {
	ID               string
	LotID            string
	GoodType         string
	OutcomeKey       string
	Materials        []MaterialLine
	QuantityProduced decimal.Decimal
	WastageReusable  decimal.Decimal
	WastageScrap     decimal.Decimal
	Remarks          string
	ProductionDate   time.Time
	RecordedBy       string
	CreatedAt        time.Time
}

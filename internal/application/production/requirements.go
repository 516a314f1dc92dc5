package production

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain"
)

// BottleRunInput entrada común de la corrida de botellas y del chequeo en seco.
// Preview y commit comparten esta estructura y el mismo cálculo de requerimientos
// para que no puedan divergir.
type BottleRunInput struct {
	PreformOutcomeKey string
	Boxes             int
	BottlesPerBox     int
	ProductID         string
	LabelID           string
	CapID             string
	Remarks           string
	Actor             string
}

// bottleRequirements requerimientos derivados de una corrida.
type bottleRequirements struct {
	outcomeKey   string
	totalBottles decimal.Decimal
	shrinkNeeded decimal.Decimal
}

// computeRequirements valida la entrada y deriva totalBottles y el shrink roll
// necesario según la tasa configurada (g/caja).
func computeRequirements(input BottleRunInput, shrinkPerBox decimal.Decimal) (bottleRequirements, error) {
	var req bottleRequirements
	if input.ProductID == "" || input.LabelID == "" || input.CapID == "" {
		return req, domain.ErrInvalidInput
	}
	req.outcomeKey = strings.ToLower(strings.TrimSpace(input.PreformOutcomeKey))
	if req.outcomeKey == "" {
		return req, domain.ErrInvalidInput
	}
	if input.Boxes <= 0 || input.BottlesPerBox <= 0 {
		return req, domain.ErrInvalidQuantity
	}
	req.totalBottles = decimal.NewFromInt(int64(input.Boxes) * int64(input.BottlesPerBox))
	req.shrinkNeeded = decimal.NewFromInt(int64(input.Boxes)).Mul(shrinkPerBox)
	return req, nil
}

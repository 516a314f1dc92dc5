package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductionHandler maneja las peticiones HTTP del motor de producción:
// corridas intermedias (preformas/tapas), corridas de botellas y el chequeo
// de disponibilidad en seco.
type ProductionHandler struct {
	intermediate *production.RecordIntermediateUseCase
	bottle       *production.RecordBottleUseCase
	availability *production.AvailabilityUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(
	intermediate *production.RecordIntermediateUseCase,
	bottle *production.RecordBottleUseCase,
	availability *production.AvailabilityUseCase,
) *ProductionHandler {
	return &ProductionHandler{intermediate: intermediate, bottle: bottle, availability: availability}
}

func lotResponse(lot *entity.ProductionLot) dto.LotResponse {
	return dto.LotResponse{
		ID:               lot.ID,
		LotNo:            lot.LotNo,
		GoodType:         lot.GoodType,
		OutcomeKey:       lot.OutcomeKey,
		QuantityProduced: lot.QuantityProduced,
		WastageReusable:  lot.WastageReusable,
		WastageScrap:     lot.WastageScrap,
		ConsumedQty:      lot.ConsumedQty,
		Available:        lot.Available(),
		Remarks:          lot.Remarks,
		ProductionDate:   lot.ProductionDate.Format("2006-01-02"),
		RecordedBy:       lot.RecordedBy,
	}
}

func bottleProductionResponse(rec *entity.BottleProduction) dto.BottleProductionResponse {
	usage := make([]dto.LotUsageDTO, len(rec.LotUsage))
	for i, u := range rec.LotUsage {
		usage[i] = dto.LotUsageDTO{
			LotID:          u.LotID,
			LotNo:          u.LotNo,
			Quantity:       u.Quantity,
			ProductionDate: u.ProductionDate.Format("2006-01-02"),
		}
	}
	return dto.BottleProductionResponse{
		ID:                rec.ID,
		PreformOutcomeKey: rec.PreformOutcomeKey,
		BoxesProduced:     rec.BoxesProduced,
		BottlesPerBox:     rec.BottlesPerBox,
		ProductID:         rec.ProductID,
		BottleCategory:    rec.BottleCategory,
		TotalBottles:      rec.TotalBottles,
		ShrinkUsed:        rec.ShrinkUsed,
		PreformUsed:       rec.PreformUsed,
		CapID:             rec.CapUsed.CapID,
		LabelID:           rec.LabelUsed.LabelID,
		LotUsage:          usage,
		Remarks:           rec.Remarks,
		ProductionDate:    rec.ProductionDate.Format("2006-01-02"),
		RecordedBy:        rec.RecordedBy,
	}
}

func bottleRunInput(in dto.BottleRunRequest) production.BottleRunInput {
	return production.BottleRunInput{
		PreformOutcomeKey: in.PreformOutcomeKey,
		Boxes:             in.Boxes,
		BottlesPerBox:     in.BottlesPerBox,
		ProductID:         in.ProductID,
		LabelID:           in.LabelID,
		CapID:             in.CapID,
		Remarks:           in.Remarks,
		Actor:             in.Actor,
	}
}

// RecordIntermediate godoc
// @Summary      Registrar producción intermedia (preformas o tapas)
// @Description  Consume materia prima, crea el lote discreto, anexa bitácora y
//
//	registra mermas en una sola transacción; cualquier faltante revierte todo.
//
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntermediateProductionRequest  true  "good_type, outcome_key, materials, quantity_produced"
// @Success      201   {object}  dto.LotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/intermediate [post]
func (h *ProductionHandler) RecordIntermediate(c *fiber.Ctx) error {
	var in dto.IntermediateProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := production.IntermediateInput{
		GoodType:         in.GoodType,
		OutcomeKey:       in.OutcomeKey,
		CapID:            in.CapID,
		QuantityProduced: in.QuantityProduced,
		WastageReusable:  in.WastageReusable,
		WastageScrap:     in.WastageScrap,
		Remarks:          in.Remarks,
		Actor:            in.Actor,
	}
	for _, line := range in.Materials {
		input.Materials = append(input.Materials, production.MaterialLineInput{
			MaterialID: line.MaterialID,
			Quantity:   line.Quantity,
		})
	}
	if in.ProductionDate != "" {
		t, err := time.Parse("2006-01-02", in.ProductionDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "production_date inválida, use YYYY-MM-DD"})
		}
		input.ProductionDate = t
	}
	lot, err := h.intermediate.Record(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lotResponse(lot))
}

// ListLots godoc
// @Summary      Lotes de un outcome key en orden FIFO
// @Tags         production
// @Produce      json
// @Param        goodType    path  string  true  "preform|cap"
// @Param        outcomeKey  path  string  true  "Identidad del bien intermedio, ej. 9gm"
// @Success      200  {array}  dto.LotResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/production/{goodType}/{outcomeKey}/lots [get]
func (h *ProductionHandler) ListLots(c *fiber.Ctx) error {
	lots, err := h.intermediate.ListLots(c.Context(), c.Params("goodType"), c.Params("outcomeKey"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LotResponse, len(lots))
	for i, lot := range lots {
		out[i] = lotResponse(lot)
	}
	return c.JSON(out)
}

// GetAvailable godoc
// @Summary      Disponible total de un outcome key (suma de lotes)
// @Tags         production
// @Produce      json
// @Param        goodType    path  string  true  "preform|cap"
// @Param        outcomeKey  path  string  true  "Identidad del bien intermedio"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/production/{goodType}/{outcomeKey}/available [get]
func (h *ProductionHandler) GetAvailable(c *fiber.Ctx) error {
	available, err := h.intermediate.GetAvailable(c.Context(), c.Params("goodType"), c.Params("outcomeKey"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"good_type":   c.Params("goodType"),
		"outcome_key": c.Params("outcomeKey"),
		"available":   available,
	})
}

// RecordBottleRun godoc
// @Summary      Registrar corrida de botellas (producto terminado)
// @Description  Asigna preformas por FIFO, descuenta tapas, etiquetas y shrink
//
//	roll y abona cajas al producto; todo-o-nada bajo una transacción.
//
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BottleRunRequest  true  "preform_outcome_key, boxes, bottles_per_box, product_id, label_id, cap_id, actor"
// @Success      201   {object}  dto.BottleProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/production/bottles [post]
func (h *ProductionHandler) RecordBottleRun(c *fiber.Ctx) error {
	var in dto.BottleRunRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	rec, err := h.bottle.Record(c.Context(), bottleRunInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bottleProductionResponse(rec))
}

// ListBottleRuns godoc
// @Summary      Corridas de botellas registradas
// @Tags         production
// @Produce      json
// @Param        limit  query  int  false  "Máx corridas (default 100)"
// @Success      200  {array}  dto.BottleProductionResponse
// @Router       /api/production/bottles [get]
func (h *ProductionHandler) ListBottleRuns(c *fiber.Ctx) error {
	list, err := h.bottle.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.BottleProductionResponse, len(list))
	for i, rec := range list {
		out[i] = bottleProductionResponse(rec)
	}
	return c.JSON(out)
}

// GetBottleRun godoc
// @Summary      Detalle de una corrida con su traza FIFO
// @Tags         production
// @Produce      json
// @Param        id  path  string  true  "ID de la corrida"
// @Success      200  {object}  dto.BottleProductionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/bottles/{id} [get]
func (h *ProductionHandler) GetBottleRun(c *fiber.Ctx) error {
	rec, err := h.bottle.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bottleProductionResponse(rec))
}

// CheckAvailability godoc
// @Summary      Chequeo en seco de una corrida prospectiva
// @Description  Evalúa preformas, tapas, etiquetas y shrink roll contra el
//
//	requerimiento derivado, sin bloquear ni mutar nada.
//
// @Tags         production
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BottleRunRequest  true  "Misma forma que la corrida; remarks y actor se ignoran"
// @Success      200   {object}  dto.AvailabilityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/bottles/check [post]
func (h *ProductionHandler) CheckAvailability(c *fiber.Ctx) error {
	var in dto.BottleRunRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	input := bottleRunInput(in)
	input.Actor = "check" // el chequeo no exige actor
	report, err := h.availability.Check(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	resources := []production.ResourceAvailability{report.Preform, report.Cap, report.Label, report.Shrink}
	out := dto.AvailabilityResponse{
		TotalBottles: report.TotalBottles,
		CanProduce:   report.CanProduce,
	}
	for _, r := range resources {
		out.Resources = append(out.Resources, dto.ResourceAvailabilityDTO{
			Resource:   r.Resource,
			Available:  r.Available,
			Required:   r.Required,
			Shortage:   r.Shortage,
			Sufficient: r.Sufficient,
			NotFound:   r.NotFound,
		})
	}
	return c.JSON(out)
}

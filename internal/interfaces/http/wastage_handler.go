package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// WastageHandler maneja las peticiones HTTP del libro de mermas.
type WastageHandler struct {
	uc *production.WastageUseCase
}

// NewWastageHandler construye el handler.
func NewWastageHandler(uc *production.WastageUseCase) *WastageHandler {
	return &WastageHandler{uc: uc}
}

func wastageResponse(w *entity.Wastage) dto.WastageResponse {
	return dto.WastageResponse{
		ID:                w.ID,
		Type:              w.Type,
		Source:            w.Source,
		QuantityGenerated: w.QuantityGenerated,
		QuantityReused:    w.QuantityReused,
		QuantityScrapped:  w.QuantityScrapped,
		ReuseReference:    w.ReuseReference,
		Remarks:           w.Remarks,
		RecordedBy:        w.RecordedBy,
		Date:              w.Date.Format("2006-01-02"),
	}
}

// Record godoc
// @Summary      Registrar merma (reutilizable y/o scrap)
// @Tags         wastages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordWastageRequest  true  "source, reusable_qty y/o scrap_qty, actor"
// @Success      201   {array}  dto.WastageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wastages [post]
func (h *WastageHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordWastageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	created, err := h.uc.Record(c.Context(), in.Source, in.ReusableQty, in.ScrapQty, in.Remarks, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.WastageResponse, len(created))
	for i, w := range created {
		out[i] = wastageResponse(w)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegisterReuse godoc
// @Summary      Acumular reutilización sobre una merma
// @Tags         wastages
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la merma"
// @Param        body  body  dto.RegisterReuseRequest  true  "quantity > 0; el acumulado no puede superar lo generado"
// @Success      200   {object}  dto.WastageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wastages/{id}/reuse [post]
func (h *WastageHandler) RegisterReuse(c *fiber.Ctx) error {
	var in dto.RegisterReuseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	w, err := h.uc.RegisterReuse(c.Context(), c.Params("id"), in.Quantity, in.Reference, in.Remarks)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wastageResponse(w))
}

// Report godoc
// @Summary      Reporte de mermas con filtros
// @Tags         wastages
// @Produce      json
// @Param        source  query  string  false  "preform|cap|bottle"
// @Param        type    query  string  false  "reusable|scrap"
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.WastageResponse
// @Router       /api/wastages [get]
func (h *WastageHandler) Report(c *fiber.Ctx) error {
	filter := repository.WastageFilter{
		Source: c.Query("source"),
		Type:   c.Query("type"),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, use YYYY-MM-DD"})
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, use YYYY-MM-DD"})
		}
		filter.To = t
	}
	list, err := h.uc.Report(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.WastageResponse, len(list))
	for i, w := range list {
		out[i] = wastageResponse(w)
	}
	return c.JSON(out)
}

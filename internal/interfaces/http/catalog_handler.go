package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// CatalogHandler maneja las peticiones HTTP de tapas, etiquetas y productos.
type CatalogHandler struct {
	catalog    *production.CatalogUseCase
	capStock   *production.DiscreteStockUseCase
	labelStock *production.DiscreteStockUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(catalog *production.CatalogUseCase, capStock, labelStock *production.DiscreteStockUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, capStock: capStock, labelStock: labelStock}
}

func capResponse(c *entity.Cap) dto.CapResponse {
	return dto.CapResponse{
		ID:                c.ID,
		NeckType:          c.NeckType,
		Size:              c.Size,
		Color:             c.Color,
		QuantityAvailable: c.QuantityAvailable,
		Remarks:           c.Remarks,
		IsActive:          c.IsActive,
	}
}

func labelResponse(l *entity.Label) dto.LabelResponse {
	return dto.LabelResponse{
		ID:                l.ID,
		BottleCategory:    l.BottleCategory,
		BottleName:        l.BottleName,
		QuantityAvailable: l.QuantityAvailable,
		Remarks:           l.Remarks,
		IsActive:          l.IsActive,
	}
}

func productResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		BottlesPerBox: p.BottlesPerBox,
		Boxes:         p.Boxes,
		IsActive:      p.IsActive,
	}
}

// ── Tapas ─────────────────────────────────────────────────────────────────────

// CreateCap godoc
// @Summary      Alta de SKU de tapa
// @Tags         caps
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCapRequest  true  "neck_type ('narrow neck'|'wide neck'), size, color; la combinación es única"
// @Success      201   {object}  dto.CapResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/caps [post]
func (h *CatalogHandler) CreateCap(c *fiber.Ctx) error {
	var in dto.CreateCapRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	cap, err := h.catalog.CreateCap(c.Context(), in.NeckType, in.Size, in.Color, in.InitialQty, in.Remarks, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(capResponse(cap))
}

// ListCaps godoc
// @Summary      SKUs de tapa con disponible
// @Tags         caps
// @Produce      json
// @Param        all  query  bool  false  "Incluir inactivos"
// @Success      200  {array}  dto.CapResponse
// @Router       /api/caps [get]
func (h *CatalogHandler) ListCaps(c *fiber.Ctx) error {
	list, err := h.catalog.ListCaps(c.Context(), !c.QueryBool("all"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.CapResponse, len(list))
	for i, cap := range list {
		out[i] = capResponse(cap)
	}
	return c.JSON(out)
}

// DeactivateCap godoc
// @Summary      Baja lógica de un SKU de tapa
// @Tags         caps
// @Param        id  path  string  true  "ID del SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caps/{id} [delete]
func (h *CatalogHandler) DeactivateCap(c *fiber.Ctx) error {
	if err := h.catalog.DeactivateCap(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IncrementCap godoc
// @Summary      Abonar unidades al pool de un SKU de tapa
// @Tags         caps
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.PoolMovementRequest  true  "quantity > 0, actor"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/caps/{id}/increment [post]
func (h *CatalogHandler) IncrementCap(c *fiber.Ctx) error {
	return h.poolIncrement(c, h.capStock)
}

// SetCapStock godoc
// @Summary      Fijar el disponible de un SKU de tapa (conteo físico)
// @Tags         caps
// @Accept       json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.PoolMovementRequest  true  "quantity >= 0, actor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caps/{id}/stock [put]
func (h *CatalogHandler) SetCapStock(c *fiber.Ctx) error {
	return h.poolSet(c, h.capStock)
}

// ── Etiquetas ─────────────────────────────────────────────────────────────────

// CreateLabel godoc
// @Summary      Alta de SKU de etiqueta
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLabelRequest  true  "bottle_category, bottle_name; la combinación es única"
// @Success      201   {object}  dto.LabelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/labels [post]
func (h *CatalogHandler) CreateLabel(c *fiber.Ctx) error {
	var in dto.CreateLabelRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	label, err := h.catalog.CreateLabel(c.Context(), in.BottleCategory, in.BottleName, in.InitialQty, in.Remarks, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(labelResponse(label))
}

// ListLabels godoc
// @Summary      SKUs de etiqueta con disponible
// @Tags         labels
// @Produce      json
// @Param        all  query  bool  false  "Incluir inactivos"
// @Success      200  {array}  dto.LabelResponse
// @Router       /api/labels [get]
func (h *CatalogHandler) ListLabels(c *fiber.Ctx) error {
	list, err := h.catalog.ListLabels(c.Context(), !c.QueryBool("all"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.LabelResponse, len(list))
	for i, label := range list {
		out[i] = labelResponse(label)
	}
	return c.JSON(out)
}

// DeactivateLabel godoc
// @Summary      Baja lógica de un SKU de etiqueta
// @Tags         labels
// @Param        id  path  string  true  "ID del SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labels/{id} [delete]
func (h *CatalogHandler) DeactivateLabel(c *fiber.Ctx) error {
	if err := h.catalog.DeactivateLabel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// IncrementLabel godoc
// @Summary      Abonar unidades al pool de un SKU de etiqueta
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.PoolMovementRequest  true  "quantity > 0, actor"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/labels/{id}/increment [post]
func (h *CatalogHandler) IncrementLabel(c *fiber.Ctx) error {
	return h.poolIncrement(c, h.labelStock)
}

// SetLabelStock godoc
// @Summary      Fijar el disponible de un SKU de etiqueta (conteo físico)
// @Tags         labels
// @Accept       json
// @Param        id    path  string  true  "ID del SKU"
// @Param        body  body  dto.PoolMovementRequest  true  "quantity >= 0, actor"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labels/{id}/stock [put]
func (h *CatalogHandler) SetLabelStock(c *fiber.Ctx) error {
	return h.poolSet(c, h.labelStock)
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProduct godoc
// @Summary      Alta de producto terminado (categoría de botella)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, category, bottles_per_box"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, err := h.catalog.CreateProduct(c.Context(), in.Name, in.Category, in.BottlesPerBox)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(productResponse(product))
}

// ListProducts godoc
// @Summary      Productos terminados con stock en cajas
// @Tags         products
// @Produce      json
// @Param        all  query  bool  false  "Incluir inactivos"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	list, err := h.catalog.ListProducts(c.Context(), !c.QueryBool("all"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.ProductResponse, len(list))
	for i, p := range list {
		out[i] = productResponse(p)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) poolIncrement(c *fiber.Ctx, pool *production.DiscreteStockUseCase) error {
	var in dto.PoolMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	newQty, err := pool.Increment(c.Context(), c.Params("id"), in.Quantity, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": c.Params("id"), "quantity_available": newQty})
}

func (h *CatalogHandler) poolSet(c *fiber.Ctx, pool *production.DiscreteStockUseCase) error {
	var in dto.PoolMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := pool.SetAvailable(c.Context(), c.Params("id"), in.Quantity, in.Actor); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

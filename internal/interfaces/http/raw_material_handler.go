package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// RawMaterialHandler maneja las peticiones HTTP del libro de materia prima.
type RawMaterialHandler struct {
	materials *production.RawMaterialUseCase
	catalog   *production.CatalogUseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(materials *production.RawMaterialUseCase, catalog *production.CatalogUseCase) *RawMaterialHandler {
	return &RawMaterialHandler{materials: materials, catalog: catalog}
}

func materialResponse(m *entity.RawMaterial) dto.RawMaterialResponse {
	return dto.RawMaterialResponse{
		ID:            m.ID,
		ItemName:      m.ItemName,
		ItemCode:      m.ItemCode,
		Subcategory:   m.Subcategory,
		Unit:          m.Unit,
		Supplier:      m.Supplier,
		MinStockLevel: m.MinStockLevel,
		CurrentStock:  m.CurrentStock,
		LowStock:      m.BelowReorderPoint(),
		Remarks:       m.Remarks,
		IsActive:      m.IsActive,
	}
}

// Create godoc
// @Summary      Alta de materia prima
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "item_name, item_code, unit (Kg|Gm|Nos), min_stock_level"
// @Success      201   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/raw-materials [post]
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	material, err := h.catalog.CreateRawMaterial(c.Context(), production.CreateRawMaterialInput{
		ItemName:      in.ItemName,
		ItemCode:      in.ItemCode,
		Subcategory:   in.Subcategory,
		Unit:          in.Unit,
		Supplier:      in.Supplier,
		MinStockLevel: in.MinStockLevel,
		Remarks:       in.Remarks,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(materialResponse(material))
}

// List godoc
// @Summary      Catálogo de materias primas con stock vigente
// @Tags         raw-materials
// @Produce      json
// @Param        all  query  bool  false  "Incluir inactivas"
// @Success      200  {array}  dto.RawMaterialResponse
// @Router       /api/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	onlyActive := !c.QueryBool("all")
	list, err := h.catalog.ListRawMaterials(c.Context(), onlyActive)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RawMaterialResponse, len(list))
	for i, m := range list {
		out[i] = materialResponse(m)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una materia prima
// @Tags         raw-materials
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {object}  dto.RawMaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	material, err := h.materials.GetMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(materialResponse(material))
}

// Update godoc
// @Summary      Actualizar datos de catálogo (no stock)
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.UpdateRawMaterialRequest  true  "Campos de catálogo"
// @Success      200   {object}  dto.RawMaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [put]
func (h *RawMaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	material, err := h.materials.GetMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	material.ItemName = in.ItemName
	material.Subcategory = in.Subcategory
	material.Supplier = in.Supplier
	material.MinStockLevel = in.MinStockLevel
	material.Remarks = in.Remarks
	if err := h.catalog.UpdateRawMaterial(c.Context(), material); err != nil {
		return respondError(c, err)
	}
	return c.JSON(materialResponse(material))
}

// Deactivate godoc
// @Summary      Baja lógica de una materia prima
// @Tags         raw-materials
// @Param        id  path  string  true  "ID del material"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id} [delete]
func (h *RawMaterialHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.catalog.DeactivateRawMaterial(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddEntry godoc
// @Summary      Registrar entrada de materia prima (recepción)
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.AddEntryRequest  true  "quantity > 0, actor"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id}/entries [post]
func (h *RawMaterialHandler) AddEntry(c *fiber.Ctx) error {
	var in dto.AddEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	entry, err := h.materials.AddEntry(c.Context(), c.Params("id"), in.Quantity, in.Remarks, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": entry.ID, "message": "entrada registrada"})
}

// ListEntries godoc
// @Summary      Historial de auditoría de un material
// @Tags         raw-materials
// @Produce      json
// @Param        id     path   string  true   "ID del material"
// @Param        limit  query  int     false  "Máx entradas (default 100)"
// @Success      200  {array}  dto.EntryResponse
// @Router       /api/raw-materials/{id}/entries [get]
func (h *RawMaterialHandler) ListEntries(c *fiber.Ctx) error {
	entries, err := h.materials.ListEntries(c.Context(), c.Params("id"), c.QueryInt("limit"))
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.EntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.EntryResponse{
			ID:         e.ID,
			MaterialID: e.MaterialID,
			Quantity:   e.Quantity,
			Remarks:    e.Remarks,
			Manual:     e.Manual,
			EnteredBy:  e.EnteredBy,
			EntryDate:  e.EntryDate.Format("2006-01-02"),
		}
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajuste manual de stock (add, reduce o set)
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.AdjustStockRequest  true  "mode, quantity, reason, actor"
// @Success      200   {object}  dto.RawMaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id}/adjust [post]
func (h *RawMaterialHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	material, err := h.materials.Adjust(c.Context(), c.Params("id"), in.Mode, in.Quantity, in.Reason, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(materialResponse(material))
}

// DirectUsage godoc
// @Summary      Consumo directo fuera de producción (limpieza, muestras)
// @Tags         raw-materials
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del material"
// @Param        body  body  dto.DirectUsageRequest  true  "quantity > 0, purpose, actor"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/raw-materials/{id}/direct-usage [post]
func (h *RawMaterialHandler) DirectUsage(c *fiber.Ctx) error {
	var in dto.DirectUsageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	usage, err := h.materials.RecordDirectUsage(c.Context(), c.Params("id"), in.Quantity, in.Purpose, in.Remarks, in.Actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": usage.ID, "message": "uso directo registrado"})
}

// LowStock godoc
// @Summary      Materiales en o por debajo del punto de reorden
// @Tags         raw-materials
// @Produce      json
// @Success      200  {array}  dto.RawMaterialResponse
// @Router       /api/raw-materials/low-stock [get]
func (h *RawMaterialHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.materials.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]dto.RawMaterialResponse, len(list))
	for i, m := range list {
		out[i] = materialResponse(m)
	}
	return c.JSON(out)
}

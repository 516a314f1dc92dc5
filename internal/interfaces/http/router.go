package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/production"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RawMaterialUC  *production.RawMaterialUseCase
	CatalogUC      *production.CatalogUseCase
	WastageUC      *production.WastageUseCase
	IntermediateUC *production.RecordIntermediateUseCase
	BottleUC       *production.RecordBottleUseCase
	AvailabilityUC *production.AvailabilityUseCase
	CapStockUC     *production.DiscreteStockUseCase
	LabelStockUC   *production.DiscreteStockUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Materia prima
	materials := api.Group("/raw-materials")
	materialHandler := NewRawMaterialHandler(deps.RawMaterialUC, deps.CatalogUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/low-stock", materialHandler.LowStock)
	materials.Get("/:id", materialHandler.GetByID)
	materials.Put("/:id", materialHandler.Update)
	materials.Delete("/:id", materialHandler.Deactivate)
	materials.Post("/:id/entries", materialHandler.AddEntry)
	materials.Get("/:id/entries", materialHandler.ListEntries)
	materials.Post("/:id/adjust", materialHandler.Adjust)
	materials.Post("/:id/direct-usage", materialHandler.DirectUsage)

	// Mermas
	wastages := api.Group("/wastages")
	wastageHandler := NewWastageHandler(deps.WastageUC)
	wastages.Post("/", wastageHandler.Record)
	wastages.Get("/", wastageHandler.Report)
	wastages.Post("/:id/reuse", wastageHandler.RegisterReuse)

	// Catálogos: tapas, etiquetas, productos
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.CapStockUC, deps.LabelStockUC)
	caps := api.Group("/caps")
	caps.Post("/", catalogHandler.CreateCap)
	caps.Get("/", catalogHandler.ListCaps)
	caps.Delete("/:id", catalogHandler.DeactivateCap)
	caps.Post("/:id/increment", catalogHandler.IncrementCap)
	caps.Put("/:id/stock", catalogHandler.SetCapStock)

	labels := api.Group("/labels")
	labels.Post("/", catalogHandler.CreateLabel)
	labels.Get("/", catalogHandler.ListLabels)
	labels.Delete("/:id", catalogHandler.DeactivateLabel)
	labels.Post("/:id/increment", catalogHandler.IncrementLabel)
	labels.Put("/:id/stock", catalogHandler.SetLabelStock)

	products := api.Group("/products")
	products.Post("/", catalogHandler.CreateProduct)
	products.Get("/", catalogHandler.ListProducts)

	// Motor de producción
	prod := api.Group("/production")
	productionHandler := NewProductionHandler(deps.IntermediateUC, deps.BottleUC, deps.AvailabilityUC)
	prod.Post("/intermediate", productionHandler.RecordIntermediate)
	prod.Post("/bottles/check", productionHandler.CheckAvailability)
	prod.Post("/bottles", productionHandler.RecordBottleRun)
	prod.Get("/bottles", productionHandler.ListBottleRuns)
	prod.Get("/bottles/:id", productionHandler.GetBottleRun)
	prod.Get("/:goodType/:outcomeKey/lots", productionHandler.ListLots)
	prod.Get("/:goodType/:outcomeKey/available", productionHandler.GetAvailable)
}

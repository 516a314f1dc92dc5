package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/production"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/internal/scheduler"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewRawMaterialRepository(pool)
	entryRepo := postgres.NewRawMaterialEntryRepository(pool)
	wastageRepo := postgres.NewWastageRepository(pool)
	lotRepo := postgres.NewProductionLotRepository(pool)
	capRepo := postgres.NewCapRepository(pool)
	labelRepo := postgres.NewLabelRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	bottleRepo := postgres.NewBottleProductionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	shrinkPerBox := decimal.NewFromFloat(cfg.Production.ShrinkGramsPerBox)
	shrinkCode := cfg.Production.ShrinkMaterialCode

	rawMaterialUC := production.NewRawMaterialUseCase(txRunner, materialRepo, entryRepo)
	catalogUC := production.NewCatalogUseCase(materialRepo, capRepo, labelRepo, productRepo)
	wastageUC := production.NewWastageUseCase(wastageRepo)
	intermediateUC := production.NewRecordIntermediateUseCase(txRunner, lotRepo)
	bottleUC := production.NewRecordBottleUseCase(txRunner, productRepo, bottleRepo, shrinkPerBox, shrinkCode)
	availabilityUC := production.NewAvailabilityUseCase(lotRepo, capRepo, labelRepo, materialRepo, shrinkPerBox, shrinkCode)
	capStockUC := production.NewDiscreteStockUseCase(capRepo, "cap")
	labelStockUC := production.NewDiscreteStockUseCase(labelRepo, "label")

	sched := scheduler.New(rawMaterialUC, cfg.Production.LowStockCron, log)
	if err := sched.Start(); err != nil {
		log.Error().Err(err).Msg("agendar vigilante de stock mínimo")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Producción PET API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RawMaterialUC:  rawMaterialUC,
		CatalogUC:      catalogUC,
		WastageUC:      wastageUC,
		IntermediateUC: intermediateUC,
		BottleUC:       bottleUC,
		AvailabilityUC: availabilityUC,
		CapStockUC:     capStockUC,
		LabelStockUC:   labelStockUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/inventario-admin/internal/application/analytics"
	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/internal/application/seeding"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventario-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/logger"
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	categoryTTL := time.Duration(cfg.Cache.CategoryTTLMinutes) * time.Minute
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, categoryTTL)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo)
	listMovementsUC := inventory.NewListMovementsUseCase(movementRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo, movementRepo, log)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeder := seeding.NewSeeder(categoryRepo, productRepo, movementRepo, rng, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewPDFUseCase(productRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	m := metrics.New("inventario")
	app.Use(m.Middleware())
	app.Get("/metrics", m.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Admin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       categoryUC,
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		ListMovements:    listMovementsUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		Seeder:           seeder,
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

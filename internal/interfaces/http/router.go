package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/analytics"
	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/internal/application/seeding"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC       *usecase.CategoryUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ListMovements    *inventory.ListMovementsUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *reports.PDFUseCase
	Seeder           *seeding.Seeder
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)

	// Stock movements (ledger)
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.ListMovements)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/inventory", reportHandler.InventoryPDF)

	// Admin (seeding)
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.Seeder)
	admin.Post("/seed", adminHandler.SeedCatalog)
	admin.Post("/seed-movements", adminHandler.SeedMovements)
}

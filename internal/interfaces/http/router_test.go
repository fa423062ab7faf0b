package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/analytics"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
	"github.com/jhoicas/inventario-admin/internal/application/seeding"
	"github.com/jhoicas/inventario-admin/internal/application/usecase"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// newTestApp levanta la app Fiber completa sobre los adaptadores en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository(categories)
	movements := memory.NewStockMovementRepository(products)
	dashboard := memory.NewDashboardRepository(products, categories)
	txRunner := memory.NewTxRunner(movements, products)
	log := logger.Nop()

	rng := rand.New(rand.NewSource(42))

	app := fiber.New()
	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:       usecase.NewCategoryUseCase(categories, time.Hour),
		ProductUC:        usecase.NewProductUseCase(products, categories),
		RegisterMovement: inventory.NewRegisterMovementUseCase(txRunner, products),
		ListMovements:    inventory.NewListMovementsUseCase(movements, log),
		DashboardUC:      analytics.NewDashboardUseCase(dashboard, movements, log),
		ReportUC:         reports.NewPDFUseCase(products, pdf.NewMarotoReportGenerator()),
		Seeder:           seeding.NewSeeder(categories, products, movements, rng, log),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*nethttp.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 30_000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func createCategory(t *testing.T, app *fiber.App, name string) dto.CategoryResponse {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/api/categories", dto.CreateCategoryRequest{Name: name})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var out dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func createProduct(t *testing.T, app *fiber.App, categoryID, sku string, stock int64) dto.ProductResponse {
	t.Helper()
	resp, raw := doJSON(t, app, "POST", "/api/products", map[string]any{
		"sku":         sku,
		"name":        "Producto " + sku,
		"price":       "19.99",
		"stock":       stock,
		"category_id": categoryID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	var out dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestAPI_CategoriasCrearYListar(t *testing.T) {
	app := newTestApp(t)

	createCategory(t, app, "Electronics")
	createCategory(t, app, "Office Supplies")

	resp, raw := doJSON(t, app, "GET", "/api/categories", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Electronics", list[0].Name)

	// Nombre vacío rechazado.
	resp, _ = doJSON(t, app, "POST", "/api/categories", dto.CreateCategoryRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ProductoCicloCompleto(t *testing.T) {
	app := newTestApp(t)
	category := createCategory(t, app, "Electronics")
	product := createProduct(t, app, category.ID, "ELEC-MOUS001", 10)

	resp, raw := doJSON(t, app, "GET", "/api/products/"+product.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "ELEC-MOUS001", got.SKU)
	require.NotNil(t, got.Category)
	assert.Equal(t, "Electronics", got.Category.Name)

	resp, raw = doJSON(t, app, "GET", "/api/products/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)

	// SKU duplicado responde 400.
	resp, _ = doJSON(t, app, "POST", "/api/products", map[string]any{
		"sku": "ELEC-MOUS001", "name": "Otro", "price": "5.00", "category_id": category.ID,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ProductosFiltroLowStock(t *testing.T) {
	app := newTestApp(t)
	category := createCategory(t, app, "Electronics")
	createProduct(t, app, category.ID, "A-1", 3)
	createProduct(t, app, category.ID, "B-1", 50)

	resp, raw := doJSON(t, app, "GET", "/api/products?lowStock=true", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "A-1", list[0].SKU)
}

func TestAPI_MovimientosRegistrarYListar(t *testing.T) {
	app := newTestApp(t)
	category := createCategory(t, app, "Electronics")
	product := createProduct(t, app, category.ID, "ELEC-KEYB001", 20)

	resp, raw := doJSON(t, app, "POST", "/api/movements", dto.RegisterMovementRequest{
		ProductID: product.ID, Type: "OUT", Quantity: 5, Reason: "Sale",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))

	// El contador del producto queda ajustado.
	_, raw = doJSON(t, app, "GET", "/api/products/"+product.ID, nil)
	var got dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 15, got.Stock)

	resp, raw = doJSON(t, app, "GET", "/api/movements?productId="+product.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.MovementListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Sale", list.Items[0].Reason)

	// Salida mayor al stock: 409 y nada escrito.
	resp, raw = doJSON(t, app, "POST", "/api/movements", dto.RegisterMovementRequest{
		ProductID: product.ID, Type: "OUT", Quantity: 999,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "INSUFFICIENT_STOCK", errResp.Code)

	// Tipo inválido: 400.
	resp, _ = doJSON(t, app, "POST", "/api/movements", dto.RegisterMovementRequest{
		ProductID: product.ID, Type: "TRANSFER", Quantity: 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAPI_Dashboard(t *testing.T) {
	app := newTestApp(t)
	category := createCategory(t, app, "Electronics")
	createProduct(t, app, category.ID, "A-1", 3)

	resp, raw := doJSON(t, app, "GET", "/api/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	for _, key := range []string{
		"totalProducts", "totalCategories", "lowStockCount", "outOfStockCount",
		"totalItems", "inventoryValue", "movementsLast30Days",
	} {
		assert.Contains(t, out, key)
	}
	assert.EqualValues(t, 1, out["totalProducts"])
	assert.EqualValues(t, 3, out["totalItems"])
}

func TestAPI_ReportePDF(t *testing.T) {
	app := newTestApp(t)
	category := createCategory(t, app, "Electronics")
	createProduct(t, app, category.ID, "A-1", 3)

	resp, raw := doJSON(t, app, "GET", "/api/reports/inventory", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "la respuesta debe ser un PDF")
}

func TestAPI_Seeding(t *testing.T) {
	app := newTestApp(t)

	// Sin catálogo, sembrar movimientos falla con 400.
	resp, _ := doJSON(t, app, "POST", "/api/admin/seed-movements", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw := doJSON(t, app, "POST", "/api/admin/seed", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	var seedOut dto.SeedResultDTO
	require.NoError(t, json.Unmarshal(raw, &seedOut))
	assert.True(t, seedOut.Success)

	resp, _ = doJSON(t, app, "POST", "/api/admin/seed-movements", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, raw = doJSON(t, app, "GET", "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &products))
	assert.Len(t, products, 75)

	// El listado de movimientos respeta el tope de 100 por defecto.
	_, raw = doJSON(t, app, "GET", "/api/movements", nil)
	var list dto.MovementListResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, 100, list.Total)

	_, raw = doJSON(t, app, "GET", "/api/movements?showAll=true", nil)
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Greater(t, list.Total, 100)
}

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/analytics"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

type dashboardFixture struct {
	categories *memory.CategoryRepository
	products   *memory.ProductRepository
	movements  *memory.StockMovementRepository
	uc         *analytics.DashboardUseCase
	categoryID string
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()
	categories := memory.NewCategoryRepository()
	products := memory.NewProductRepository(categories)
	movements := memory.NewStockMovementRepository(products)
	dashboard := memory.NewDashboardRepository(products, categories)

	category := &entity.Category{ID: uuid.New().String(), Name: "Electronics"}
	require.NoError(t, categories.Create(context.Background(), category))

	return &dashboardFixture{
		categories: categories,
		products:   products,
		movements:  movements,
		uc:         analytics.NewDashboardUseCase(dashboard, movements, logger.Nop()),
		categoryID: category.ID,
	}
}

func (f *dashboardFixture) addProduct(t *testing.T, sku string, stock int64, price string, active bool) string {
	t.Helper()
	p := &entity.Product{
		ID:         uuid.New().String(),
		SKU:        sku,
		Name:       "Producto " + sku,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		Active:     active,
		CategoryID: f.categoryID,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p.ID
}

func TestDashboard_Contadores(t *testing.T) {
	f := newDashboardFixture(t)

	f.addProduct(t, "A-1", 0, "10.00", true)  // agotado y low stock
	f.addProduct(t, "B-1", 9, "10.00", true)  // low stock (< 10)
	f.addProduct(t, "C-1", 10, "10.00", true) // fuera del umbral de alerta
	f.addProduct(t, "D-1", 50, "10.00", true)
	f.addProduct(t, "E-1", 0, "10.00", false) // inactivo: no cuenta en nada

	out, err := f.uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 4, out.TotalProducts, "solo productos activos")
	assert.EqualValues(t, 1, out.TotalCategories)
	assert.EqualValues(t, 2, out.LowStockCount, "activos con stock < 10")
	assert.EqualValues(t, 1, out.OutOfStockCount)
	assert.EqualValues(t, 69, out.TotalItems)
}

// El valor del inventario se calcula con decimales: 3 × 19.99 debe dar
// exactamente 59.97, no 59.97000000000001.
func TestDashboard_ValorConDecimalesExactos(t *testing.T) {
	f := newDashboardFixture(t)

	f.addProduct(t, "A-1", 3, "19.99", true)
	f.addProduct(t, "B-1", 2, "0.10", true)
	f.addProduct(t, "C-1", 100, "5.00", false) // inactivo: excluido del valor

	out, err := f.uc.GetSummary(context.Background())
	require.NoError(t, err)

	expected := decimal.RequireFromString("60.17") // 3×19.99 + 2×0.10
	assert.True(t, out.InventoryValue.Equal(expected),
		"esperado %s, obtenido %s", expected, out.InventoryValue)
}

func TestDashboard_MovimientosUltimos30Dias(t *testing.T) {
	f := newDashboardFixture(t)
	productID := f.addProduct(t, "A-1", 10, "10.00", true)
	ctx := context.Background()

	add := func(daysAgo int) {
		require.NoError(t, f.movements.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeIN,
			Quantity:  1,
			CreatedAt: time.Now().AddDate(0, 0, -daysAgo),
		}))
	}
	add(1)
	add(15)
	add(29)
	add(45) // fuera de la ventana

	out, err := f.uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.MovementsLast30Days)
}

// Si el ledger no existe, la métrica de movimientos cae a cero pero el
// resto del resumen se entrega completo.
func TestDashboard_DegradaSinLedger(t *testing.T) {
	f := newDashboardFixture(t)
	f.addProduct(t, "A-1", 5, "10.00", true)
	f.movements.SetUnavailable(true)

	out, err := f.uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, out.MovementsLast30Days)
	assert.EqualValues(t, 1, out.TotalProducts)
	assert.EqualValues(t, 5, out.TotalItems)
}

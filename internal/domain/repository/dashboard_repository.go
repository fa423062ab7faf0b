package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StockPrice proyección {stock, price} de un producto activo.
// El caso de uso del dashboard suma sobre ella con aritmética decimal
// para no perder precisión monetaria.
type StockPrice struct {
	Stock int64
	Price decimal.Decimal
}

// DashboardRepository define las consultas de lectura para los agregados
// del dashboard. Las implementaciones son read-only.
type DashboardRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	// CountLowStock cuenta productos activos con stock < threshold
	// (umbral de alerta temprana, distinto del filtro de listado).
	CountLowStock(ctx context.Context, threshold int64) (int64, error)
	// CountOutOfStock cuenta productos activos con stock = 0.
	CountOutOfStock(ctx context.Context) (int64, error)
	// ListActiveStockPrices proyecta stock y precio de los productos activos.
	ListActiveStockPrices(ctx context.Context) ([]StockPrice, error)
}

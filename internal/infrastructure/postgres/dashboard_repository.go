package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository resuelve los agregados del dashboard directo en SQL.
// Cada conteo es una consulta simple; el valor del inventario se arma en la
// capa de aplicación con decimales para no perder centavos en el camino.
type DashboardRepository struct {
	db Querier
}

// NewDashboardRepository crea el repositorio.
func NewDashboardRepository(db Querier) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// CountActiveProducts cuenta productos activos.
func (r *DashboardRepository) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar productos activos: %w", err)
	}
	return count, nil
}

// CountCategories cuenta todas las categorías.
func (r *DashboardRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar categorías: %w", err)
	}
	return count, nil
}

// CountLowStock cuenta productos activos con stock bajo el umbral dado.
func (r *DashboardRepository) CountLowStock(ctx context.Context, threshold int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE active AND stock < $1`, threshold,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar stock bajo: %w", err)
	}
	return count, nil
}

// CountOutOfStock cuenta productos activos sin stock.
func (r *DashboardRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE active AND stock = 0`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("contar sin stock: %w", err)
	}
	return count, nil
}

// ListActiveStockPrices retorna la proyección (stock, precio) de todos los
// productos activos.
func (r *DashboardRepository) ListActiveStockPrices(ctx context.Context) ([]repository.StockPrice, error) {
	rows, err := r.db.Query(ctx, `SELECT stock, price FROM products WHERE active`)
	if err != nil {
		return nil, fmt.Errorf("listar stock y precios: %w", err)
	}
	defer rows.Close()

	var items []repository.StockPrice
	for rows.Next() {
		var sp repository.StockPrice
		if err := rows.Scan(&sp.Stock, &sp.Price); err != nil {
			return nil, fmt.Errorf("scan stock y precio: %w", err)
		}
		items = append(items, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar stock y precios: %w", err)
	}
	return items, nil
}

package memory

import (
	"context"

	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

// DashboardRepository calcula los agregados recorriendo los repositorios
// en memoria.
type DashboardRepository struct {
	products   *ProductRepository
	categories *CategoryRepository
}

// NewDashboardRepository construye el adaptador de lectura.
func NewDashboardRepository(products *ProductRepository, categories *CategoryRepository) *DashboardRepository {
	return &DashboardRepository{products: products, categories: categories}
}

// CountActiveProducts cuenta los productos activos.
func (r *DashboardRepository) CountActiveProducts(_ context.Context) (int64, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	var count int64
	for _, p := range r.products.products {
		if p.Active {
			count++
		}
	}
	return count, nil
}

// CountCategories cuenta todas las categorías.
func (r *DashboardRepository) CountCategories(_ context.Context) (int64, error) {
	r.categories.mu.RLock()
	defer r.categories.mu.RUnlock()
	return int64(len(r.categories.categories)), nil
}

// CountLowStock cuenta activos con stock < threshold.
func (r *DashboardRepository) CountLowStock(_ context.Context, threshold int64) (int64, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	var count int64
	for _, p := range r.products.products {
		if p.Active && p.Stock < threshold {
			count++
		}
	}
	return count, nil
}

// CountOutOfStock cuenta activos con stock = 0.
func (r *DashboardRepository) CountOutOfStock(_ context.Context) (int64, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	var count int64
	for _, p := range r.products.products {
		if p.Active && p.Stock == 0 {
			count++
		}
	}
	return count, nil
}

// ListActiveStockPrices proyecta {stock, price} de los productos activos.
func (r *DashboardRepository) ListActiveStockPrices(_ context.Context) ([]repository.StockPrice, error) {
	r.products.mu.RLock()
	defer r.products.mu.RUnlock()
	rows := make([]repository.StockPrice, 0, len(r.products.products))
	for _, p := range r.products.products {
		if p.Active {
			rows = append(rows, repository.StockPrice{Stock: p.Stock, Price: p.Price})
		}
	}
	return rows, nil
}

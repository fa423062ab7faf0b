package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementación en memoria. Necesita el repositorio de
// categorías para embeber la categoría en los listados.
type ProductRepository struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	categories *CategoryRepository
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository(categories *CategoryRepository) *ProductRepository {
	return &ProductRepository{
		products:   make(map[string]*entity.Product),
		categories: categories,
	}
}

// Create guarda el producto; el SKU es único.
func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	r.products[product.ID] = cloneProduct(product)
	return nil
}

// GetByID devuelve (nil, nil) si no existe, con la categoría embebida.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	p := cloneProduct(r.products[id])
	r.mu.RUnlock()
	return r.embed(ctx, p)
}

// GetBySKU devuelve (nil, nil) si no existe.
func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.SKU == sku {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// List aplica el filtro tipado y ordena por nombre ascendente.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.RLock()
	list := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.LowStock && !(p.Active && p.Stock <= repository.LowStockThreshold) {
			continue
		}
		list = append(list, cloneProduct(p))
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	for _, p := range list {
		if _, err := r.embed(ctx, p); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// GetForUpdate en memoria no bloquea filas; devuelve la copia actual.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// UpdateStock fija el contador de stock del producto.
func (r *ProductRepository) UpdateStock(_ context.Context, id string, stock int64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.UpdatedAt = updatedAt
	return nil
}

// DeleteAll vacía el repositorio.
func (r *ProductRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make(map[string]*entity.Product)
	return nil
}

func (r *ProductRepository) embed(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	if p == nil || r.categories == nil {
		return p, nil
	}
	category, err := r.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	p.Category = category
	return p, nil
}

func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

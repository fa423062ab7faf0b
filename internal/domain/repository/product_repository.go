package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// LowStockThreshold es el corte del listado accionable de reposición
// (stock <= 5). El dashboard usa un umbral de alerta distinto (< 10);
// son dos vistas intencionalmente diferentes, no un bug.
const LowStockThreshold = 5

// ProductFilter enumera los filtros reconocidos por List.
// Reemplaza los mapas de filtros sueltos: todo filtro llega tipado y
// validado desde la frontera HTTP.
type ProductFilter struct {
	CategoryID string
	LowStock   bool // active AND stock <= LowStockThreshold
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// List devuelve productos ordenados por nombre ascendente con la
	// categoría embebida.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para
	// ajustar el contador de stock dentro de una transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	UpdateStock(ctx context.Context, id string, stock int64, updatedAt time.Time) error
	// DeleteAll vacía la tabla; solo lo usa el flujo de reseed.
	DeleteAll(ctx context.Context) error
}

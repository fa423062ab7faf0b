package repository

import (
	"context"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// List devuelve todas las categorías ordenadas por nombre ascendente.
	List(ctx context.Context) ([]*entity.Category, error)
	// DeleteAll vacía la tabla; solo lo usa el flujo de reseed.
	DeleteAll(ctx context.Context) error
}

// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Lo usan los tests y cualquier arranque sin PostgreSQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implementación en memoria.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*entity.Category

	// Lecturas al backend, contadas para los tests de la caché.
	ListCalls int
}

// NewCategoryRepository construye el repositorio vacío.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[string]*entity.Category)}
}

// Create guarda la categoría; el nombre es único.
func (r *CategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	r.categories[category.ID] = cloneCategory(category)
	return nil
}

// GetByID devuelve (nil, nil) si no existe, igual que el adaptador de pg.
func (r *CategoryRepository) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCategory(r.categories[id]), nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepository) List(_ context.Context) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCalls++
	list := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		list = append(list, cloneCategory(c))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// DeleteAll vacía el repositorio.
func (r *CategoryRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = make(map[string]*entity.Category)
	return nil
}

func cloneCategory(c *entity.Category) *entity.Category {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

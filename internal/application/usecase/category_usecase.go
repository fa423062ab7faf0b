package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/ttlcache"
)

// CategoryTTL tiempo de vida de la caché del listado de categorías.
const CategoryTTL = time.Hour

// CategoryUseCase casos de uso para categorías. El listado completo se
// memoiza en una caché de un slot con TTL; la creación la invalida para
// que la nueva categoría sea visible de inmediato.
type CategoryUseCase struct {
	repo  repository.CategoryRepository
	cache *ttlcache.Cache[[]*entity.Category]
}

// NewCategoryUseCase construye el caso de uso con el TTL indicado.
func NewCategoryUseCase(repo repository.CategoryRepository, ttl time.Duration) *CategoryUseCase {
	return &CategoryUseCase{
		repo:  repo,
		cache: ttlcache.New[[]*entity.Category](ttl),
	}
}

// List devuelve todas las categorías ordenadas por nombre, servidas desde
// la caché mientras el TTL esté vigente.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := uc.cache.Get(func() ([]*entity.Category, error) {
		return uc.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Create crea una categoría e invalida la caché del listado.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	uc.cache.Invalidate()
	return toCategoryResponse(category), nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

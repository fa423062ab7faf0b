package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository implementación en memoria del ledger.
type StockMovementRepository struct {
	mu        sync.RWMutex
	movements []*entity.StockMovement
	products  *ProductRepository

	unavailable bool
}

// NewStockMovementRepository construye el ledger vacío.
func NewStockMovementRepository(products *ProductRepository) *StockMovementRepository {
	return &StockMovementRepository{products: products}
}

// SetUnavailable simula que la tabla de movimientos no existe todavía:
// todas las operaciones devuelven domain.ErrBackendUnavailable.
func (r *StockMovementRepository) SetUnavailable(unavailable bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable = unavailable
}

// Create agrega el movimiento al ledger.
func (r *StockMovementRepository) Create(_ context.Context, movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return fmt.Errorf("create movement: %w", domain.ErrBackendUnavailable)
	}
	clone := *movement
	r.movements = append(r.movements, &clone)
	return nil
}

// List filtra y ordena del más reciente al más antiguo. limit <= 0 = sin tope.
func (r *StockMovementRepository) List(ctx context.Context, filter repository.MovementFilter, limit int) ([]*entity.StockMovement, error) {
	r.mu.RLock()
	if r.unavailable {
		r.mu.RUnlock()
		return nil, fmt.Errorf("list movements: %w", domain.ErrBackendUnavailable)
	}
	list := make([]*entity.StockMovement, 0, len(r.movements))
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		clone := *m
		list = append(list, &clone)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	if r.products != nil {
		for _, m := range list {
			product, err := r.products.GetByID(ctx, m.ProductID)
			if err != nil {
				return nil, err
			}
			m.Product = product
		}
	}
	return list, nil
}

// CountSince cuenta movimientos con created_at >= since.
func (r *StockMovementRepository) CountSince(_ context.Context, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.unavailable {
		return 0, fmt.Errorf("count movements: %w", domain.ErrBackendUnavailable)
	}
	var count int64
	for _, m := range r.movements {
		if !m.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

// DeleteAll vacía el ledger.
func (r *StockMovementRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return fmt.Errorf("delete movements: %w", domain.ErrBackendUnavailable)
	}
	r.movements = nil
	return nil
}

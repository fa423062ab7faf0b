package repository

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// MovementFilter enumera los filtros reconocidos por el listado del ledger.
// From y To son límites inclusivos ya normalizados en la frontera
// (To cubre hasta el fin del día calendario del filtro).
type MovementFilter struct {
	ProductID string
	Type      string // IN, OUT o vacío (todos)
	From      *time.Time
	To        *time.Time
}

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// Las implementaciones devuelven domain.ErrBackendUnavailable (envuelto)
// cuando la tabla de movimientos aún no existe.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// List devuelve movimientos del más reciente al más antiguo, con el
	// producto embebido. limit <= 0 significa sin tope.
	List(ctx context.Context, filter MovementFilter, limit int) ([]*entity.StockMovement, error)
	// CountSince cuenta los movimientos con created_at >= since.
	CountSince(ctx context.Context, since time.Time) (int64, error)
	// DeleteAll vacía el ledger; solo lo usa el flujo de reseed.
	DeleteAll(ctx context.Context) error
}

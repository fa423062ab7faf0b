package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository implementa el ledger de movimientos sobre
// PostgreSQL. Si la tabla stock_movements todavía no existe (42P01) todas
// las operaciones retornan domain.ErrBackendUnavailable envuelto, para que
// la capa de aplicación degrade en vez de romper el resto del sistema.
type StockMovementRepository struct {
	db Querier
}

// NewStockMovementRepository crea el repositorio. Acepta el pool o una tx.
func NewStockMovementRepository(db Querier) *StockMovementRepository {
	return &StockMovementRepository{db: db}
}

func wrapLedgerErr(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrBackendUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Create agrega un movimiento al ledger. El ledger es append-only: no hay
// update ni delete individual.
func (r *StockMovementRepository) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		movement.ID,
		movement.ProductID,
		movement.Type,
		movement.Quantity,
		movement.Reason,
		movement.CreatedAt,
	)
	if err != nil {
		return wrapLedgerErr("insert movimiento", err)
	}
	return nil
}

// List retorna movimientos con su producto, del más reciente al más viejo.
// limit <= 0 significa sin tope.
func (r *StockMovementRepository) List(ctx context.Context, filter repository.MovementFilter, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.created_at,
		       p.sku, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE 1=1`

	var args []any
	argPos := 1

	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND m.product_id = $%d", argPos)
		args = append(args, filter.ProductID)
		argPos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND m.type = $%d", argPos)
		args = append(args, filter.Type)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	query += " ORDER BY m.created_at DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, limit)
		argPos++
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapLedgerErr("listar movimientos", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var p entity.Product
		err := rows.Scan(
			&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason, &m.CreatedAt,
			&p.SKU, &p.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		p.ID = m.ProductID
		m.Product = &p
		movements = append(movements, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapLedgerErr("iterar movimientos", err)
	}
	return movements, nil
}

// CountSince cuenta movimientos registrados desde el instante dado.
func (r *StockMovementRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM stock_movements WHERE created_at >= $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, wrapLedgerErr("contar movimientos", err)
	}
	return count, nil
}

// DeleteAll vacía el ledger. Solo lo usa el seeding.
func (r *StockMovementRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM stock_movements`); err != nil {
		return wrapLedgerErr("borrar movimientos", err)
	}
	return nil
}

package memory

import (
	"context"

	"github.com/jhoicas/inventario-admin/internal/application/inventory"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta el callback directamente sobre los repositorios en
// memoria. No hay transacción real: si fn falla a mitad de camino los
// cambios previos quedan aplicados, lo cual es aceptable para tests y
// arranques de desarrollo.
type TxRunner struct {
	movements *StockMovementRepository
	products  *ProductRepository
}

// NewTxRunner construye el runner.
func NewTxRunner(movements *StockMovementRepository, products *ProductRepository) *TxRunner {
	return &TxRunner{movements: movements, products: products}
}

// Run invoca fn con los repositorios compartidos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	_ = ctx
	return fn(r.movements, r.products)
}

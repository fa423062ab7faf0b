package inventory

import "github.com/jhoicas/inventario-admin/internal/domain/entity"

// DeriveStock implementa la suma del ledger (servicio de dominio).
// StockDerivado = StockInicial + Σ(IN.Quantity) - Σ(OUT.Quantity)
// Es la contraparte verificable del contador products.stock: cuando todo
// movimiento pasa por el caso de uso transaccional, ambos coinciden.
func DeriveStock(initial int64, movements []*entity.StockMovement) int64 {
	stock := initial
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIN:
			stock += m.Quantity
		case entity.MovementTypeOUT:
			stock -= m.Quantity
		}
	}
	return stock
}

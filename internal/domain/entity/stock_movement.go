package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// ValidMovementType indica si el tipo pertenece al vocabulario del ledger.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}

// StockMovement representa una entrada del ledger de inventario.
// Es append-only: se crea y nunca se modifica; solo el flujo de reseed
// borra movimientos en bloque.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN, OUT
	Quantity  int64  // siempre positivo; el signo lo da Type
	Reason    string
	Product   *Product // embebido en listados; nil si no se cargó
	CreatedAt time.Time
}

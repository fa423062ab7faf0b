package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es el contador vigente; todo ajuste pasa por el caso de uso de
// movimientos, que lo actualiza junto con el ledger en la misma transacción.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Stock       int64
	Active      bool
	CategoryID  string
	Category    *Category // embebida en listados; nil si no se cargó
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

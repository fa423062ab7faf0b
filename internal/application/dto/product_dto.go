package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Price es puntero para distinguir "ausente" de cero; Stock y Active
// aplican valores por defecto (0 y true) si no vienen en el body.
type CreateProductRequest struct {
	SKU         string           `json:"sku" validate:"required,min=1,max=100"`
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
	Active      *bool            `json:"active"`
	CategoryID  string           `json:"category_id"`
}

// ProductResponse salida de un producto con su categoría embebida.
type ProductResponse struct {
	ID          string            `json:"id"`
	SKU         string            `json:"sku"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       decimal.Decimal   `json:"price"`
	Stock       int64             `json:"stock"`
	Active      bool              `json:"active"`
	CategoryID  string            `json:"category_id"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

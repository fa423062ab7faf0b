package entity

import "time"

// Category representa una categoría de productos.
// Name es único; Description es opcional. Nunca se elimina fuera del reseed.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

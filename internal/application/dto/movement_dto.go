package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
type RegisterMovementRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // IN, OUT
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason"`
}

// MovementQuery parámetros reconocidos del listado del ledger.
// StartDate y EndDate llegan como YYYY-MM-DD; el caso de uso los valida
// y normaliza (EndDate inclusivo hasta el fin de ese día calendario).
type MovementQuery struct {
	ProductID string `query:"productId"`
	Type      string `query:"type"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	ShowAll   bool   `query:"showAll"`
}

// MovementProductRef referencia mínima al producto del movimiento.
type MovementProductRef struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID        string              `json:"id"`
	ProductID string              `json:"product_id"`
	Type      string              `json:"type"`
	Quantity  int64               `json:"quantity"`
	Reason    string              `json:"reason"`
	Product   *MovementProductRef `json:"product,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// MovementListResponse listado del ledger (del más reciente al más antiguo).
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// InventoryValue se calcula con aritmética decimal (Σ stock × price sobre
// productos activos); nunca con float binario.
type DashboardSummaryDTO struct {
	TotalProducts   int64 `json:"totalProducts"` // productos activos
	TotalCategories int64 `json:"totalCategories"`
	LowStockCount   int64 `json:"lowStockCount"`   // activos con stock < 10
	OutOfStockCount int64 `json:"outOfStockCount"` // activos con stock = 0

	TotalItems     int64           `json:"totalItems"`     // Σ stock (activos)
	InventoryValue decimal.Decimal `json:"inventoryValue"` // Σ stock × price (activos)

	// Derivado del ledger; cae a 0 si el almacén de movimientos no existe.
	MovementsLast30Days int64 `json:"movementsLast30Days"`
}

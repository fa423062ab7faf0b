// Package reports genera el reporte de valorización del inventario.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRow una fila del reporte: un producto con su valor en inventario.
type ReportRow struct {
	SKU      string
	Name     string
	Category string
	Stock    int64
	Active   bool
	Price    decimal.Decimal
	Value    decimal.Decimal // Stock × Price
}

// InventoryReportGenerator renderiza el reporte a PDF.
type InventoryReportGenerator interface {
	GenerateInventoryPDF(ctx context.Context, rows []ReportRow, totalValue decimal.Decimal, generatedAt time.Time) ([]byte, error)
}

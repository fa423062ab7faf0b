package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// PDFUseCase arma el reporte de valorización: todos los productos con
// stock, precio y valor (stock × price), más el total sobre activos.
type PDFUseCase struct {
	productRepo repository.ProductRepository
	generator   InventoryReportGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(productRepo repository.ProductRepository, generator InventoryReportGenerator) *PDFUseCase {
	return &PDFUseCase{productRepo: productRepo, generator: generator}
}

// DownloadInventoryPDF genera el PDF y devuelve (bytes, filename).
func (uc *PDFUseCase) DownloadInventoryPDF(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listar productos: %w", err)
	}

	rows := make([]ReportRow, 0, len(products))
	totalValue := decimal.Zero
	for _, p := range products {
		value := p.Price.Mul(decimal.NewFromInt(p.Stock))
		row := ReportRow{
			SKU:    p.SKU,
			Name:   p.Name,
			Stock:  p.Stock,
			Active: p.Active,
			Price:  p.Price,
			Value:  value,
		}
		if p.Category != nil {
			row.Category = p.Category.Name
		}
		rows = append(rows, row)
		if p.Active {
			totalValue = totalValue.Add(value)
		}
	}

	now := time.Now()
	pdfBytes, err := uc.generator.GenerateInventoryPDF(ctx, rows, totalValue, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar PDF: %w", err)
	}

	filename := fmt.Sprintf("inventario_%s.pdf", now.Format("20060102"))
	return pdfBytes, filename, nil
}

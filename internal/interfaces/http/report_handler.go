package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/reports"
)

// ReportHandler maneja la descarga de reportes.
type ReportHandler struct {
	uc *reports.PDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.PDFUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadInventoryPDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

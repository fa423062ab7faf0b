package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/seeding"
)

// AdminHandler maneja las operaciones administrativas de seeding.
type AdminHandler struct {
	seeder *seeding.Seeder
}

// NewAdminHandler construye el handler.
func NewAdminHandler(seeder *seeding.Seeder) *AdminHandler {
	return &AdminHandler{seeder: seeder}
}

// SeedCatalog godoc
// @Summary      Sembrar catálogo demo
// @Description  Borra todo y crea categorías y productos de demostración.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SeedResultDTO
// @Router       /api/admin/seed [post]
func (h *AdminHandler) SeedCatalog(c *fiber.Ctx) error {
	categories, products, err := h.seeder.SeedCatalog(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SeedResultDTO{
		Success: true,
		Message: fmt.Sprintf("catálogo sembrado: %d categorías, %d productos", categories, products),
	})
}

// SeedMovements godoc
// @Summary      Sembrar movimientos demo
// @Description  Borra el ledger y genera movimientos históricos de los últimos 30 días.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SeedResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/seed-movements [post]
func (h *AdminHandler) SeedMovements(c *fiber.Ctx) error {
	total, err := h.seeder.SeedMovements(c.UserContext())
	if err != nil {
		if errors.Is(err, seeding.ErrNoProducts) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_PRODUCTS", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SeedResultDTO{
		Success: true,
		Message: fmt.Sprintf("%d movimientos generados", total),
	})
}

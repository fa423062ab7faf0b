// Package analytics contiene el caso de uso de los agregados del dashboard.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

const (
	// lowStockWarningThreshold es el corte de alerta temprana del dashboard
	// (stock < 10). Distinto del filtro accionable de listado (<= 5).
	lowStockWarningThreshold = 10

	movementWindowDays = 30
)

// DashboardUseCase calcula bajo demanda los agregados del inventario.
// No cachea nada: cada llamada recalcula desde el estado actual del store.
// La porción derivada del ledger se aísla: si el almacén de movimientos no
// existe todavía, cae a cero sin tumbar el resto de la respuesta.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
	movRepo  repository.StockMovementRepository
	log      *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository, movRepo repository.StockMovementRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo, movRepo: movRepo, log: log}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres consultas en paralelo:
//  1. contadores (activos, categorías, low stock, agotados)
//  2. proyección {stock, price} de activos → TotalItems + InventoryValue
//  3. movimientos de los últimos 30 días (degradable)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countsResult struct {
		products, categories, lowStock, outOfStock int64
		err                                        error
	}
	type pricesResult struct {
		rows []repository.StockPrice
		err  error
	}
	type movementsResult struct {
		count int64
		err   error
	}

	countsCh := make(chan countsResult, 1)
	pricesCh := make(chan pricesResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		var r countsResult
		r.products, r.err = uc.dashRepo.CountActiveProducts(ctx)
		if r.err == nil {
			r.categories, r.err = uc.dashRepo.CountCategories(ctx)
		}
		if r.err == nil {
			r.lowStock, r.err = uc.dashRepo.CountLowStock(ctx, lowStockWarningThreshold)
		}
		if r.err == nil {
			r.outOfStock, r.err = uc.dashRepo.CountOutOfStock(ctx)
		}
		countsCh <- r
	}()
	go func() {
		rows, err := uc.dashRepo.ListActiveStockPrices(ctx)
		pricesCh <- pricesResult{rows, err}
	}()
	go func() {
		since := time.Now().AddDate(0, 0, -movementWindowDays)
		count, err := uc.movRepo.CountSince(ctx, since)
		movementsCh <- movementsResult{count, err}
	}()

	counts := <-countsCh
	prices := <-pricesCh
	movements := <-movementsCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if prices.err != nil {
		return nil, fmt.Errorf("dashboard: proyección stock/precio: %w", prices.err)
	}
	if movements.err != nil {
		// Aislamiento de falla parcial: sin ledger, la métrica cae a cero.
		if !errors.Is(movements.err, domain.ErrBackendUnavailable) {
			return nil, fmt.Errorf("dashboard: movimientos: %w", movements.err)
		}
		uc.log.Warn().Err(movements.err).Msg("ledger no disponible; métrica de movimientos en cero")
		movements.count = 0
	}

	var totalItems int64
	inventoryValue := decimal.Zero
	for _, row := range prices.rows {
		totalItems += row.Stock
		inventoryValue = inventoryValue.Add(row.Price.Mul(decimal.NewFromInt(row.Stock)))
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:       counts.products,
		TotalCategories:     counts.categories,
		LowStockCount:       counts.lowStock,
		OutOfStockCount:     counts.outOfStock,
		TotalItems:          totalItems,
		InventoryValue:      inventoryValue,
		MovementsLast30Days: movements.count,
	}, nil
}

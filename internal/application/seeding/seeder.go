// Package seeding genera datos sintéticos de demostración: catálogo de
// productos/categorías e historial de movimientos. Solo para desarrollo.
package seeding

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

// ErrNoProducts indica que se pidió sembrar movimientos sin catálogo.
var ErrNoProducts = errors.New("no hay productos; ejecute primero el seed de catálogo")

// Vocabulario fijo de razones por tipo de movimiento.
var (
	reasonsIN = []string{
		"Restock",
		"Return from customer",
		"Inventory adjustment",
		"Transfer from warehouse",
	}
	reasonsOUT = []string{
		"Sale",
		"Damaged",
		"Return to supplier",
		"Lost/stolen",
		"Sample",
	}
)

// Seeder reemplaza en bloque el contenido de los stores con datos demo.
//
// SeedMovements escribe directo en el ledger sin tocar el contador
// products.stock: es el camino legado que los tests de regresión vigilan
// (el contador y la suma del ledger divergen a propósito tras un reseed).
type Seeder struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	movRepo      repository.StockMovementRepository
	rng          *rand.Rand
	log          *logger.Logger
}

// NewSeeder construye el seeder. rng inyectable para reproducibilidad.
func NewSeeder(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	rng *rand.Rand,
	log *logger.Logger,
) *Seeder {
	return &Seeder{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		movRepo:      movRepo,
		rng:          rng,
		log:          log,
	}
}

// SeedCatalog borra todo (movimientos, productos, categorías) y crea el
// catálogo demo: 5 categorías con 15 productos cada una.
func (s *Seeder) SeedCatalog(ctx context.Context) (categories, products int, err error) {
	// Orden de borrado respetando las FKs; si el ledger aún no existe se
	// ignora (el catálogo puede sembrarse antes que la tabla de movimientos).
	if err := s.movRepo.DeleteAll(ctx); err != nil && !errors.Is(err, domain.ErrBackendUnavailable) {
		return 0, 0, fmt.Errorf("vaciar ledger: %w", err)
	}
	if err := s.productRepo.DeleteAll(ctx); err != nil {
		return 0, 0, fmt.Errorf("vaciar productos: %w", err)
	}
	if err := s.categoryRepo.DeleteAll(ctx); err != nil {
		return 0, 0, fmt.Errorf("vaciar categorías: %w", err)
	}

	now := time.Now()
	seenSKUs := make(map[string]bool)

	for _, c := range demoCatalog {
		category := &entity.Category{
			ID:          uuid.New().String(),
			Name:        c.Name,
			Description: c.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return categories, products, fmt.Errorf("crear categoría %s: %w", c.Name, err)
		}
		categories++

		for _, name := range c.Products {
			sku := s.generateSKU(name, c.Prefix)
			for seenSKUs[sku] {
				sku = s.generateSKU(name, c.Prefix)
			}
			seenSKUs[sku] = true

			stock := int64(s.rng.Intn(120))
			if s.rng.Intn(10) == 0 {
				stock = 0
			}
			product := &entity.Product{
				ID:         uuid.New().String(),
				SKU:        sku,
				Name:       name,
				Price:      randomPrice(s.rng),
				Stock:      stock,
				Active:     s.rng.Intn(10) != 0, // ~90% activos
				CategoryID: category.ID,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if err := s.productRepo.Create(ctx, product); err != nil {
				return categories, products, fmt.Errorf("crear producto %s: %w", sku, err)
			}
			products++
		}
	}

	s.log.Info().Int("categories", categories).Int("products", products).Msg("catálogo demo sembrado")
	return categories, products, nil
}

// SeedMovements reemplaza el ledger completo con historial sintético:
// 10–30 movimientos por producto, 70% OUT / 30% IN, cantidad 1–10, razón
// del vocabulario fijo y fecha uniforme dentro de los últimos 30 días.
func (s *Seeder) SeedMovements(ctx context.Context) (total int, err error) {
	products, err := s.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return 0, fmt.Errorf("listar productos: %w", err)
	}
	if len(products) == 0 {
		return 0, ErrNoProducts
	}

	if err := s.movRepo.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("vaciar ledger: %w", err)
	}

	now := time.Now()
	for _, product := range products {
		count := 10 + s.rng.Intn(21) // 10–30
		for i := 0; i < count; i++ {
			movType := entity.MovementTypeIN
			reasons := reasonsIN
			if s.rng.Float64() > 0.3 { // 70% salidas
				movType = entity.MovementTypeOUT
				reasons = reasonsOUT
			}
			movement := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				Type:      movType,
				Quantity:  int64(1 + s.rng.Intn(10)),
				Reason:    reasons[s.rng.Intn(len(reasons))],
				CreatedAt: now.AddDate(0, 0, -s.rng.Intn(30)),
			}
			if err := s.movRepo.Create(ctx, movement); err != nil {
				return total, fmt.Errorf("crear movimiento: %w", err)
			}
			total++
		}
	}

	s.log.Info().Int("movements", total).Int("products", len(products)).Msg("ledger demo sembrado")
	return total, nil
}

// generateSKU arma un SKU PREFIX-NAME4### a partir del nombre del producto.
func (s *Seeder) generateSKU(name, prefix string) string {
	clean := make([]rune, 0, 4)
	for _, r := range name {
		if len(clean) == 4 {
			break
		}
		switch {
		case r >= 'a' && r <= 'z':
			clean = append(clean, r-('a'-'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			clean = append(clean, r)
		}
	}
	return fmt.Sprintf("%s-%s%03d", prefix, string(clean), s.rng.Intn(1000))
}

// randomPrice devuelve un precio con dos decimales entre 4.99 y 199.99.
func randomPrice(rng *rand.Rand) decimal.Decimal {
	cents := 499 + rng.Intn(19501)
	return decimal.New(int64(cents), -2)
}

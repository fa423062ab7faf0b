// seed puebla la base de datos con el catálogo demo y, opcionalmente, con
// movimientos históricos de stock.
//
// Uso: go run ./cmd/seed [-movements]
package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/seeding"
	"github.com/jhoicas/inventario-admin/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-admin/pkg/config"
	"github.com/jhoicas/inventario-admin/pkg/logger"
)

func main() {
	withMovements := flag.Bool("movements", false, "generar también movimientos históricos")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeder := seeding.NewSeeder(categoryRepo, productRepo, movementRepo, rng, log)

	categories, products, err := seeder.SeedCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("seed de catálogo")
	}
	log.Info().
		Int("categories", categories).
		Int("products", products).
		Msg("catálogo sembrado")

	if *withMovements {
		total, err := seeder.SeedMovements(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("seed de movimientos")
		}
		log.Info().Int("movements", total).Msg("movimientos generados")
	}
}

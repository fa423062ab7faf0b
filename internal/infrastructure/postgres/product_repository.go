package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository implementa el repositorio de productos sobre PostgreSQL.
type ProductRepository struct {
	db Querier
}

// NewProductRepository crea el repositorio. Acepta el pool o una tx.
func NewProductRepository(db Querier) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `
	p.id, p.sku, p.name, p.description, p.price, p.stock, p.active,
	p.category_id, p.created_at, p.updated_at,
	c.id, c.name, c.description, c.created_at, c.updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var c entity.Category
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Active,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}

// Create inserta un producto.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, description, price, stock, active, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.SKU,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Active,
		product.CategoryID,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: SKU %q ya existe", domain.ErrDuplicate, product.SKU)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID busca un producto por ID con su categoría. Retorna (nil, nil) si
// no existe.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select producto: %w", err)
	}
	return p, nil
}

// GetBySKU busca un producto por SKU. Retorna (nil, nil) si no existe.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.sku = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, sku))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select producto por SKU: %w", err)
	}
	return p, nil
}

// List retorna productos con su categoría, aplicando el filtro. El filtro
// lowStock deja solo activos con stock en o bajo el umbral de reposición.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE 1=1`

	var args []any
	argPos := 1

	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.LowStock {
		query += fmt.Sprintf(" AND p.active AND p.stock <= $%d", argPos)
		args = append(args, repository.LowStockThreshold)
		argPos++
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar productos: %w", err)
	}
	return products, nil
}

// GetForUpdate lee un producto bloqueando su fila (SELECT FOR UPDATE). Debe
// llamarse dentro de una transacción; es el candado que serializa los
// movimientos concurrentes sobre el mismo producto.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, description, price, stock, active, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
		FOR UPDATE`

	var p entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Active,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select producto for update: %w", err)
	}
	return &p, nil
}

// UpdateStock fija el contador de stock de un producto.
func (r *ProductRepository) UpdateStock(ctx context.Context, id string, stock int64, updatedAt time.Time) error {
	query := `
		UPDATE products
		SET stock = $2, updated_at = $3
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, stock, updatedAt)
	if err != nil {
		return fmt.Errorf("actualizar stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteAll borra todos los productos. Solo lo usa el seeding.
func (r *ProductRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("borrar productos: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
)

// ProductRepository is the catalog store. All text matching is
// case-insensitive substring containment and results follow id order.
type ProductRepository interface {
	// FindByNameSubstring returns the first product whose name contains query,
	// or nil when none does.
	FindByNameSubstring(ctx context.Context, query string) (*models.Product, error)
	// FindByNameInText returns the first product whose name appears within
	// text, or nil when none does.
	FindByNameInText(ctx context.Context, text string) (*models.Product, error)
	// FindByDescriptionSubstring returns every product whose description
	// contains query. An empty query matches all products.
	FindByDescriptionSubstring(ctx context.Context, query string) ([]*models.Product, error)
	ListAll(ctx context.Context) ([]*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	CountProducts(ctx context.Context) (int, error)
	// SeedIfEmpty inserts products only when the catalog has no rows and
	// reports how many were inserted.
	SeedIfEmpty(ctx context.Context, products []*models.Product) (int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, description, price, image, created_at`

// Serialises concurrent seeders across processes.
const seedLockKey = 7301

func (r *productRepository) FindByNameSubstring(ctx context.Context, query string) (*models.Product, error) {

	q := `SELECT ` + productColumns + `
		FROM products
		WHERE POSITION(LOWER($1) IN LOWER(name)) > 0
		ORDER BY id
		LIMIT 1`

	return r.findOne(ctx, q, query)
}

func (r *productRepository) FindByNameInText(ctx context.Context, text string) (*models.Product, error) {

	q := `SELECT ` + productColumns + `
		FROM products
		WHERE POSITION(LOWER(name) IN LOWER($1)) > 0
		ORDER BY id
		LIMIT 1`

	return r.findOne(ctx, q, text)
}

func (r *productRepository) FindByDescriptionSubstring(ctx context.Context, query string) ([]*models.Product, error) {

	q := `SELECT ` + productColumns + `
		FROM products
		WHERE POSITION(LOWER($1) IN LOWER(description)) > 0
		ORDER BY id`

	return r.findMany(ctx, q, query)
}

func (r *productRepository) ListAll(ctx context.Context) ([]*models.Product, error) {

	q := `SELECT ` + productColumns + `
		FROM products
		ORDER BY id`

	return r.findMany(ctx, q)
}

// GetProductByID returns sql.ErrNoRows when the product does not exist.
func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	q := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1`

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, q, id).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Image, &product.CreatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (name, description, price, image)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, product.Name, product.Description, product.Price, product.Image).Scan(&product.ID, &product.CreatedAt)
}

func (r *productRepository) CountProducts(ctx context.Context) (int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *productRepository) SeedIfEmpty(ctx context.Context, products []*models.Product) (int, error) {

	if len(products) == 0 {
		return 0, nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(dbCtx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return 0, fmt.Errorf("failed to acquire seed lock: %w", err)
	}

	var total int
	if err := tx.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	if total > 0 {
		return 0, nil
	}

	placeholders := make([]string, 0, len(products))
	args := make([]any, 0, len(products)*4)

	for i, p := range products {
		n := i * 4
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4))
		args = append(args, p.Name, p.Description, p.Price, p.Image)
	}

	query := `INSERT INTO products (name, description, price, image) VALUES ` + strings.Join(placeholders, ", ") + ` RETURNING id, created_at`

	rows, err := tx.QueryContext(dbCtx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert products: %w", err)
	}

	defer rows.Close()

	inserted := 0
	for rows.Next() {
		if inserted < len(products) {
			if err := rows.Scan(&products[inserted].ID, &products[inserted].CreatedAt); err != nil {
				return 0, fmt.Errorf("failed to scan inserted product: %w", err)
			}
		}
		inserted++
	}

	if err := rows.Err(); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}

	return inserted, nil
}

func (r *productRepository) findOne(ctx context.Context, query string, args ...any) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, args...).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Image, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) findMany(ctx context.Context, query string, args ...any) ([]*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product := &models.Product{}

		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Image, &product.CreatedAt); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

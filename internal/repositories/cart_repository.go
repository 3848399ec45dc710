package repository

import (
	"context"
	"database/sql"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
)

type CartRepository interface {
	// AddItem always inserts a new row, entries are never merged.
	AddItem(ctx context.Context, entry *models.CartEntry) error
	ListItems(ctx context.Context, userID int64) ([]*models.CartItem, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) AddItem(ctx context.Context, entry *models.CartEntry) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.DB.QueryRowContext(dbCtx, query, entry.UserID, entry.ProductID, entry.Quantity).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return translatePQError(err)
	}

	return nil
}

func (r *cartRepository) ListItems(ctx context.Context, userID int64) ([]*models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT p.id, p.name, p.price, p.image, c.quantity
		FROM cart_items c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.id`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	items := []*models.CartItem{}

	for rows.Next() {
		item := &models.CartItem{}

		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Image, &item.Quantity); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

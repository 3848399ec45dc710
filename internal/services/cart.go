package service

import (
	"context"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
)

const defaultQuantity = 1

type CartService interface {
	AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartEntry, error)
	ListItems(ctx context.Context, userID int64) ([]*models.CartItem, error)
}

type cartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

// AddItem always records a new entry, adding a product already in the cart
// does not bump the existing quantity.
func (s *cartService) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartEntry, error) {

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = defaultQuantity
	}

	entry := &models.CartEntry{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}

	if err := s.repo.AddItem(ctx, entry); err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrProductReference):
			return nil, errors.NotFoundError("Product not found").WithError(err)
		case stdErrors.Is(err, repository.ErrUserReference):
			return nil, errors.NotFoundError("User not found").WithError(err)
		case stdErrors.Is(err, repository.ErrReferenceNotFound):
			return nil, errors.NotFoundError("Product or user not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Item added to cart",
		slog.Int64("productId", entry.ProductID),
		slog.Int("quantity", entry.Quantity),
	)

	return entry, nil
}

func (s *cartService) ListItems(ctx context.Context, userID int64) ([]*models.CartItem, error) {

	items, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	return items, nil
}

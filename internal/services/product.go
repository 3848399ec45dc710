package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/cache"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// SearchProducts returns at most one product, the first whose name
	// contains query.
	SearchProducts(ctx context.Context, query string) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	// SeedCatalog inserts the starter catalog into an empty store and reports
	// how many products were added.
	SeedCatalog(ctx context.Context) (int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

// NewProductService accepts a nil cache, listings then always hit the store.
func NewProductService(repo repository.ProductRepository, productCache cache.Cache) ProductService {
	return &productService{repo: repo, cache: productCache}
}

func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {

	logger := middleware.LoggerFromContext(ctx)

	if s.cache != nil {
		var cached []*models.Product

		found, err := s.cache.Get(ctx, cache.ProductListKey, &cached)
		if err != nil {
			logger.Warn("Product cache read failed", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	products, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.ProductListKey, products, 0); err != nil {
			logger.Warn("Product cache write failed", slog.String("error", err.Error()))
		}
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) SearchProducts(ctx context.Context, query string) ([]*models.Product, error) {

	product, err := s.repo.FindByNameSubstring(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("Failed to search products").WithError(err)
	}

	if product == nil {
		return []*models.Product{}, nil
	}

	return []*models.Product{product}, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
		Price:       req.Price,
		Image:       req.Image,
	}

	if product.Name == "" {
		return nil, errors.AddValidationError("name", "must contain visible text")
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	s.invalidate(ctx)

	middleware.LoggerFromContext(ctx).Info("Product created", slog.Int64("productId", product.ID))

	return product, nil
}

func (s *productService) SeedCatalog(ctx context.Context) (int, error) {

	inserted, err := s.repo.SeedIfEmpty(ctx, StarterCatalog())
	if err != nil {
		return 0, errors.DatabaseError("Failed to seed catalog").WithError(err)
	}

	if inserted > 0 {
		s.invalidate(ctx)
	}

	return inserted, nil
}

func (s *productService) invalidate(ctx context.Context) {

	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.ProductListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.String("error", err.Error()))
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	service "github.com/aaravmahajanofficial/smart-shop-assistant/internal/services"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Lists the whole catalog, or the first product whose name contains q
//	@Tags			Products
//	@Produce		json
//	@Param			q	query		string	false	"Case-insensitive name fragment"
//	@Success		200	{array}		models.Product
//	@Failure		401	{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var (
			products []*models.Product
			err      error
		)

		if query := strings.TrimSpace(r.URL.Query().Get("q")); query != "" {
			logger.Debug("Searching products", slog.String("query", query))
			products, err = h.productService.SearchProducts(r.Context(), query)
		} else {
			products, err = h.productService.ListProducts(r.Context())
		}

		if err != nil {
			writeError(logger, w, "Failed to list products", err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	models.Product
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		401	{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			writeError(logger, w, "Invalid product ID", err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			writeError(logger, w, "Failed to fetch product", err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// CreateProduct godoc
//
//	@Summary		Add a product
//	@Description	Administrative insert, requires the X-Admin-Key header
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Invalid admin key"
//	@Failure		403		{object}	response.ErrorResponse	"Administrative access disabled"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		AdminKey
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			writeError(logger, w, "Failed to create product", err)
			return
		}

		logger.Info("Product created", slog.Int64("productId", product.ID))

		response.Success(w, http.StatusCreated, product)
	}
}

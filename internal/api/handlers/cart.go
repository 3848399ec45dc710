package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	service "github.com/aaravmahajanofficial/smart-shop-assistant/internal/services"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Always appends a new line, even for a product already in the cart
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Product and optional quantity (default 1)"
//	@Success		201		{object}	models.CartEntry
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		entry, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			writeError(logger, w, "Failed to add item to cart", err)
			return
		}

		logger.Info("Item added to cart", slog.Int64("productId", entry.ProductID), slog.Int("quantity", entry.Quantity))

		response.Success(w, http.StatusCreated, entry)
	}
}

// GetCart godoc
//
//	@Summary		List cart items
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{array}		models.CartItem
//	@Failure		401	{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		items, err := h.cartService.ListItems(r.Context(), claims.UserID)
		if err != nil {
			writeError(logger, w, "Failed to fetch cart", err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

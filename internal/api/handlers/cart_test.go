package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/services/mocks"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddItem(t *testing.T) {
	t.Run("Success - Quantity Omitted", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		expectedReq := &models.AddItemRequest{ProductID: 3}
		entry := &models.CartEntry{ID: 11, UserID: testUserID, ProductID: 3, Quantity: 1, CreatedAt: time.Now()}
		cartService.On("AddItem", mock.Anything, testUserID, expectedReq).Return(entry, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"productId":3}`)), testUserID, nil)

		handler.AddItem().ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var got models.CartEntry
		decodeResponse(t, rr, &got)
		assert.Equal(t, int64(11), got.ID)
		assert.Equal(t, 1, got.Quantity)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"productId":3}`)), nil)

		handler.AddItem().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusUnauthorized, appErrors.ErrCodeUnauthorized)
	})

	t.Run("Validation Error - Missing Product", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"quantity":2}`)), testUserID, nil)

		handler.AddItem().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusBadRequest, appErrors.ErrCodeValidation)
	})

	t.Run("Product Not Found", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("AddItem", mock.Anything, testUserID, &models.AddItemRequest{ProductID: 404, Quantity: 2}).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart/items",
			bytes.NewReader([]byte(`{"productId":404,"quantity":2}`)), testUserID, nil)

		handler.AddItem().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusNotFound, appErrors.ErrCodeNotFound)
	})
}

func TestGetCart(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		items := []*models.CartItem{
			{ID: 3, Name: "Smart Watch", Price: 299.99, Quantity: 1},
			{ID: 3, Name: "Smart Watch", Price: 299.99, Quantity: 1},
		}
		cartService.On("ListItems", mock.Anything, testUserID).Return(items, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, testUserID, nil)

		handler.GetCart().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got []models.CartItem
		decodeResponse(t, rr, &got)
		assert.Len(t, got, 2)
	})

	t.Run("Store Error", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("ListItems", mock.Anything, testUserID).Return(nil, appErrors.DatabaseError("Failed to fetch cart")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, testUserID, nil)

		handler.GetCart().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusInternalServerError, appErrors.ErrCodeDatabaseError)
	})
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/services/mocks"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	validReq := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	t.Run("Success", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		auth := &models.AuthResponse{
			User:      &models.User{ID: 1, Username: "alice", Email: "alice@example.com"},
			Token:     "signed.jwt.token",
			ExpiresIn: 86400,
		}
		userService.On("Register", mock.Anything, &validReq).Return(auth, nil).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body), nil)

		handler.Register().ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var got models.AuthResponse
		resp := decodeResponse(t, rr, &got)
		assert.True(t, resp.Success)
		assert.Equal(t, "signed.jwt.token", got.Token)
		assert.Equal(t, int64(1), got.User.ID)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("Validation Error - Missing Email", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register",
			bytes.NewReader([]byte(`{"username":"alice","password":"secret1"}`)), nil)

		handler.Register().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusBadRequest, appErrors.ErrCodeValidation)
		userService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		userService.On("Register", mock.Anything, &validReq).
			Return(nil, appErrors.DuplicateEmailError("Email already registered")).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body), nil)

		handler.Register().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusConflict, appErrors.ErrCodeDuplicateEmail)
	})

	t.Run("Store Error Is Sanitized", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		cause := stdErrors.New("pq: relation \"users\" does not exist")
		userService.On("Register", mock.Anything, &validReq).
			Return(nil, appErrors.DatabaseError("Failed to create user").WithError(cause)).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body), nil)

		handler.Register().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusInternalServerError, appErrors.ErrCodeDatabaseError)
		assert.NotContains(t, rr.Body.String(), "relation")
	})
}

func TestLogin(t *testing.T) {
	validReq := models.LoginRequest{Email: "alice@example.com", Password: "secret1"}

	t.Run("Success", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		auth := &models.AuthResponse{User: &models.User{ID: 1, Email: validReq.Email}, Token: "tok", ExpiresIn: 3600}
		userService.On("Login", mock.Anything, &validReq).Return(auth, nil).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body), nil)

		handler.Login().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.AuthResponse
		decodeResponse(t, rr, &got)
		assert.Equal(t, "tok", got.Token)
		assert.Equal(t, 3600, got.ExpiresIn)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		userService.On("Login", mock.Anything, &validReq).
			Return(nil, appErrors.InvalidCredentialsError("Invalid email or password")).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body), nil)

		handler.Login().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusUnauthorized, appErrors.ErrCodeInvalidCredentials)
	})

	t.Run("Rate Limited", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		userService.On("Login", mock.Anything, &validReq).
			Return(nil, appErrors.TooManyRequestsError("Too many login attempts").WithRetryAfter(9)).Once()

		body, _ := json.Marshal(validReq)
		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body), nil)

		handler.Login().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusTooManyRequests, appErrors.ErrCodeTooManyRequests)
		assert.Equal(t, "9", rr.Header().Get("Retry-After"))
	})

	t.Run("Bad JSON", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{bad")), nil)

		handler.Login().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusBadRequest, appErrors.ErrCodeValidation)
	})
}

func TestProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		user := &models.User{ID: testUserID, Username: "alice", Email: testutils.TestEmail}
		userService.On("GetUserByID", mock.Anything, testUserID).Return(user, nil).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, testUserID, nil)

		handler.Profile().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var got models.User
		decodeResponse(t, rr, &got)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)

		handler.Profile().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusUnauthorized, appErrors.ErrCodeUnauthorized)
	})

	t.Run("User Not Found", func(t *testing.T) {
		userService := mocks.NewMockUserService(t)
		handler := handlers.NewUserHandler(userService)

		userService.On("GetUserByID", mock.Anything, testUserID).Return(nil, appErrors.NotFoundError("User not found")).Once()

		rr := httptest.NewRecorder()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, testUserID, nil)

		handler.Profile().ServeHTTP(rr, req)

		requireErrorCode(t, rr, http.StatusNotFound, appErrors.ErrCodeNotFound)
	})
}

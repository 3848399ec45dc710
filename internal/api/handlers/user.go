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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Creates an account and returns it together with an access token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	models.AuthResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email or username already taken"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		logger.Info("Attempting to register user", slog.String("email", req.Email))

		auth, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			writeError(logger, w, "Failed to register user", err)
			return
		}

		logger.Info("User registered successfully", slog.Int64("userId", auth.User.ID))

		response.Success(w, http.StatusCreated, auth)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access token
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	models.AuthResponse
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid credentials"
//	@Failure		429			{object}	response.ErrorResponse	"Too many login attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/auth/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		auth, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			writeError(logger, w, "Login failed", err)
			return
		}

		logger.Info("User logged in", slog.Int64("userId", auth.User.ID))

		response.Success(w, http.StatusOK, auth)
	}
}

// Profile godoc
//
//	@Summary		Current user
//	@Description	Returns the account behind the access token
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User
//	@Failure		401	{object}	response.ErrorResponse	"Unauthorized"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/users/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := requireClaims(w, r)
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			writeError(logger, w, "Failed to fetch profile", err)
			return
		}

		response.Success(w, http.StatusOK, user)
	}
}

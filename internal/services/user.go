package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	repository "github.com/aaravmahajanofficial/smart-shop-assistant/internal/repositories"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	repo        repository.UserRepository
	rateLimiter repository.RateLimitRepository
	tokens      TokenIssuer
}

func NewUserService(repo repository.UserRepository, rateLimiter repository.RateLimitRepository, tokens TokenIssuer) UserService {
	return &userService{
		repo:        repo,
		rateLimiter: rateLimiter,
		tokens:      tokens,
	}
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {

	username := utils.SanitizeText(req.Username)
	if len(username) < 3 {
		return nil, errors.AddValidationError("username", "must contain at least 3 visible characters")
	}

	existingUser, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil && !stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.DatabaseError("Failed to check existing user").WithError(err)
	}

	if existingUser != nil {
		return nil, errors.DuplicateEmailError("Email already registered")
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.InternalError("Failed to secure password").WithError(err)
	}

	user := &models.User{
		Username: username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	// The pre-check races with concurrent registrations, the unique
	// constraints have the final word.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		switch {
		case stdErrors.Is(err, repository.ErrDuplicateEmail):
			return nil, errors.DuplicateEmailError("Email already registered").WithError(err)
		case stdErrors.Is(err, repository.ErrDuplicateUsername):
			return nil, errors.DuplicateEntryError("Username already taken").WithError(err)
		default:
			return nil, errors.DatabaseError("Failed to create user").WithError(err)
		}
	}

	middleware.LoggerFromContext(ctx).Info("User registered", slog.Int64("userId", user.ID))

	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	// check rate limit
	allowed, remaining, retryAfter, err := s.rateLimiter.CheckLoginRateLimit(ctx, req.Email)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}

	if !allowed {
		logger.Warn("Login rate limit exceeded", slog.Int("retryAfter", retryAfter))
		return nil, errors.TooManyRequestsError("Too many login attempts. Please try again later.").WithRetryAfter(retryAfter)
	}

	// Retrieve the user from the DB and compare the passwords
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			logger.Info("Login for unknown email", slog.Int("remainingTries", remaining))
			return nil, errors.InvalidCredentialsError("Invalid email or password")
		}

		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Info("Login with wrong password", slog.Int64("userId", user.ID), slog.Int("remainingTries", remaining))
		return nil, errors.InvalidCredentialsError("Invalid email or password")
	}

	return s.authResponse(user)
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {

	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("User not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return user, nil
}

func (s *userService) authResponse(user *models.User) (*models.AuthResponse, error) {

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	return &models.AuthResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int(time.Until(expiresAt).Seconds()),
	}, nil
}

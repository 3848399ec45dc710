package handlers

import (
	stdErrors "errors"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/api/middleware"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/models"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
)

// writeError logs err with its wrapped cause and renders the client-safe part.
// Client errors log at warn, everything else at error.
func writeError(logger *slog.Logger, w http.ResponseWriter, msg string, err error) {

	attrs := []any{slog.String("error", err.Error())}

	if cause := stdErrors.Unwrap(err); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
		logger.Warn(msg, attrs...)
	} else {
		logger.Error(msg, attrs...)
	}

	response.Error(w, err)
}

// requireClaims writes a 401 when the request did not pass Authenticate.
func requireClaims(w http.ResponseWriter, r *http.Request) (*models.Claims, bool) {

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		middleware.LoggerFromContext(r.Context()).Warn("Unauthorized access attempt")
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return nil, false
	}

	return claims, true
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
)

const AdminKeyHeader = "X-Admin-Key"

// RequireAdminKey guards the administrative routes. With no key configured
// every request is refused.
func RequireAdminKey(adminKey string, next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		if adminKey == "" {
			logger.Warn("Administrative route called but no admin key is configured")
			response.Error(w, errors.ForbiddenError("Administrative access is disabled"))
			return
		}

		provided := r.Header.Get(AdminKeyHeader)

		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			logger.Warn("Invalid or missing admin key")
			response.Error(w, errors.UnauthorizedError("Invalid or missing admin key"))
			return
		}

		next.ServeHTTP(w, r)
	}
}

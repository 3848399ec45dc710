package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/smart-shop-assistant/internal/errors"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils"
	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@b.com"}`))
		w := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, w, &dest, validate)

		assert.True(t, ok)
		assert.Equal(t, "a@b.com", dest.Email)
	})

	t.Run("Failure - Empty Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		w := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, w, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "request body cannot be empty")
	})

	t.Run("Failure - Malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
		w := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, w, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"not-an-email"}`))
		w := httptest.NewRecorder()

		var dest sampleRequest
		ok := utils.ParseAndValidate(req, w, &dest, validate)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Validation failed", resp.Error.Message)
		assert.Equal(t, []string{"Field Email must be a valid email address"}, resp.Error.Details)
	})
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"Valid", "42", 42, false},
		{"Zero", "0", 0, true},
		{"Negative", "-3", 0, true},
		{"Not a number", "abc", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("id", tc.value)

			id, err := utils.ParseID(req, "id")
			if tc.wantErr {
				appErr, ok := appErrors.IsAppError(err)
				require.True(t, ok)
				assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}

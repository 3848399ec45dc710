package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/smart-shop-assistant/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const testUserID int64 = 7

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) response.APIResponse {
	t.Helper()

	var resp struct {
		response.APIResponse
		Data json.RawMessage `json:"data,omitempty"`
	}

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	if data != nil && len(resp.Data) > 0 {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}

	return resp.APIResponse
}

func requireErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rr.Code)

	resp := decodeResponse(t, rr, nil)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
}

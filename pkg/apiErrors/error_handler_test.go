package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Token expirado", code: ErrExpiredToken, wantStatus: http.StatusUnauthorized},
		{name: "Conta de outro cliente", code: ErrInsufficientPrivilege, wantStatus: http.StatusForbidden},
		{name: "Validação", code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{name: "Código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.code, decode(t, rec)["code"])
		})
	}
}

func TestWriteUpstreamError(t *testing.T) {
	t.Run("Rate limit", func(t *testing.T) {
		rec := httptest.NewRecorder()

		ok := WriteUpstreamError(rec, domain.NewRateLimitedError("campaign insights", 17, "User request limit reached"), 60)

		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))

		body := decode(t, rec)
		assert.Equal(t, ErrMetaRateLimited, body["code"])
		assert.Contains(t, body["message"], "RATE_LIMIT")
		assert.Equal(t, float64(60), body["details"].(map[string]any)["retry_after_seconds"])
	})

	t.Run("Erro da Meta", func(t *testing.T) {
		rec := httptest.NewRecorder()

		ok := WriteUpstreamError(rec, domain.NewUpstreamError("ad insights", 100, "Invalid parameter", nil), 60)

		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, ErrMetaUpstream, decode(t, rec)["code"])
	})

	t.Run("Outro erro", func(t *testing.T) {
		rec := httptest.NewRecorder()

		assert.False(t, WriteUpstreamError(rec, errors.New("boom"), 60))
		assert.Equal(t, 0, rec.Body.Len())
	})
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/ads-insights-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ads-insights-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *authmocks.MockAuthenticator)
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "Rota pública",
			path:       "/healthcheck",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "Sem header",
			path:       "/v1/accounts",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Sem Bearer",
			path:       "/v1/accounts",
			header:     "Token abc",
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token expirado",
			path:   "/v1/accounts",
			header: "Bearer velho",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "Token válido",
			path:   "/v1/accounts",
			header: "Bearer bom",
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{ClientID: "cli1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authmocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			called := false
			handler := AuthMiddleware(auth)(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAuthMiddleware_ClaimsNoContexto(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ValidateToken("bom").Return(&domain.Claims{ClientID: "cli1"}, nil)

	var got *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set("Authorization", "Bearer bom")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "cli1", got.ClientID)
}

func TestAccountOwnership(t *testing.T) {
	tests := []struct {
		name       string
		checkErr   error
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "Conta do cliente",
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
		{
			name:       "Conta de outro cliente",
			checkErr:   account.NewAccountErrorWithID(account.ErrAccountForbidden, apiErrors.ErrInsufficientPrivilege, "acc1", "Conta pertence a outro cliente"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Erro de banco",
			checkErr:   account.NewAccountError(account.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Erro inesperado",
			checkErr:   errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			accounts := accountmocks.NewMockAccountService(ctrl)
			accounts.EXPECT().CheckOwnership(gomock.Any(), "cli1", "acc1").Return(tt.checkErr)

			called := false
			router := httprouter.New()
			router.Handler(http.MethodGet, "/v1/accounts/:account_id/summary", AccountOwnership(accounts)(okHandler(&called)))

			req := httptest.NewRequest(http.MethodGet, "/v1/accounts/acc1/summary", nil)
			req = req.WithContext(context.WithValue(req.Context(), ContextKeyClaims, &domain.Claims{ClientID: "cli1"}))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestAccountOwnership_SemClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := accountmocks.NewMockAccountService(ctrl)

	called := false
	handler := AccountOwnership(accounts)(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts/acc1/summary", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestCors(t *testing.T) {
	origins := []string{"http://localhost:3000"}

	t.Run("Origem permitida", func(t *testing.T) {
		called := false
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors(origins)(okHandler(&called)).ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Origem não permitida", func(t *testing.T) {
		called := false
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		Cors(origins)(okHandler(&called)).ServeHTTP(rec, req)

		assert.True(t, called)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight", func(t *testing.T) {
		called := false
		req := httptest.NewRequest(http.MethodOptions, "/v1/accounts", nil)
		rec := httptest.NewRecorder()

		Cors(origins)(okHandler(&called)).ServeHTTP(rec, req)

		assert.False(t, called)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingMiddleware_StatusCode(t *testing.T) {
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/accounts", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

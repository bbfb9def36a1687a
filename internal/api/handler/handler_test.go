package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-insights-api/internal/api/handler/router"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	accountmocks "github.com/vfg2006/ads-insights-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/ads-insights-api/internal/usecases/authenticating/mocks"
	insightmocks "github.com/vfg2006/ads-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/middleware"
)

const (
	testClientID  = "cli_42"
	testAccountID = "Xk2JfP0aQ9mB"
	retryAfter    = 60
)

var fixedNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local)

type fixture struct {
	insights *insightmocks.MockInsighter
	accounts *accountmocks.MockAccountService
	handler  http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	previous := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = previous })

	f := &fixture{
		insights: insightmocks.NewMockInsighter(ctrl),
		accounts: accountmocks.NewMockAccountService(ctrl),
	}

	rt := router.New(
		router.WithRoutes(AdAccounts(f.accounts)...),
		router.WithRoutes(Insights(f.insights, f.accounts, retryAfter)...),
	)
	f.handler = withClaims(rt)

	return f
}

// withClaims faz o papel do AuthMiddleware
func withClaims(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.ContextKeyClaims, &domain.Claims{ClientID: testClientID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (f *fixture) allowOwnership() {
	f.accounts.EXPECT().CheckOwnership(gomock.Any(), testClientID, testAccountID).Return(nil)
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetAccountSummary_Periodo(t *testing.T) {
	defaultPeriod, err := domain.PeriodFromPreset(domain.DefaultPeriodPreset, fixedNow)
	require.NoError(t, err)
	weekPeriod, err := domain.PeriodFromPreset(domain.PeriodLast7Days, fixedNow)
	require.NoError(t, err)
	march, err := domain.ParsePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)

	tests := []struct {
		name       string
		query      string
		wantPeriod *domain.Period
		wantStatus int
	}{
		{
			name:       "Sem parâmetros usa o preset padrão",
			wantPeriod: &defaultPeriod,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Preset 7d",
			query:      "?period=7d",
			wantPeriod: &weekPeriod,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Datas explícitas",
			query:      "?from=2025-03-01&to=2025-03-31",
			wantPeriod: &march,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Somente from",
			query:      "?from=2025-03-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Data final antes da inicial",
			query:      "?from=2025-03-31&to=2025-03-01",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Preset desconhecido",
			query:      "?period=1y",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.allowOwnership()

			if tt.wantPeriod != nil {
				f.insights.EXPECT().GetAccountSummary(gomock.Any(), testAccountID, *tt.wantPeriod).
					Return(&domain.AccountSummary{AccountID: testAccountID}, nil)
			}

			rec := f.get("/v1/accounts/" + testAccountID + "/summary" + tt.query)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetCampaignMetrics_RateLimit(t *testing.T) {
	f := newFixture(t)
	f.allowOwnership()

	f.insights.EXPECT().GetCampaignMetrics(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, domain.NewRateLimitedError("campaign_insights", 17, "User request limit reached"))

	rec := f.get("/v1/accounts/" + testAccountID + "/campaigns")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	apiErr := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrMetaRateLimited, apiErr.Code)
	assert.True(t, strings.HasPrefix(apiErr.Message, "RATE_LIMIT"))
}

func TestGetCampaignMetrics_ErroDaMeta(t *testing.T) {
	f := newFixture(t)
	f.allowOwnership()

	f.insights.EXPECT().GetCampaignMetrics(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, domain.NewUpstreamError("campaign_insights", 100, "Invalid parameter", nil))

	rec := f.get("/v1/accounts/" + testAccountID + "/campaigns")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrMetaUpstream, decodeError(t, rec).Code)
}

func TestInsights_ContaDeOutroCliente(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().CheckOwnership(gomock.Any(), testClientID, testAccountID).
		Return(account.NewAccountErrorWithID(account.ErrAccountForbidden, apiErrors.ErrInsufficientPrivilege, testAccountID, ""))

	rec := f.get("/v1/accounts/" + testAccountID + "/ads/top")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeError(t, rec).Code)
}

func TestGetAdSetsAndAds_Filtros(t *testing.T) {
	f := newFixture(t)
	f.allowOwnership()
	f.allowOwnership()

	f.insights.EXPECT().GetAdSets(gomock.Any(), testAccountID, gomock.Any(), "c1").
		Return([]*domain.AdSetSummary{{MetaAdSetID: "s1"}}, nil)
	f.insights.EXPECT().GetAds(gomock.Any(), testAccountID, gomock.Any(), "").
		Return([]*domain.AdSummary{}, nil)

	rec := f.get("/v1/accounts/" + testAccountID + "/adsets?campaign_id=c1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"s1"`)

	rec = f.get("/v1/accounts/" + testAccountID + "/ads")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetTopAndBottomAds_Limite(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(f *fixture)
		wantStatus int
	}{
		{
			name: "Top com limite",
			path: "/ads/top?limit=3",
			setup: func(f *fixture) {
				f.insights.EXPECT().GetTopAds(gomock.Any(), testAccountID, gomock.Any(), 3).Return([]*domain.AdRanking{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Bottom sem limite repassa zero",
			path: "/ads/bottom",
			setup: func(f *fixture) {
				f.insights.EXPECT().GetBottomAds(gomock.Any(), testAccountID, gomock.Any(), 0).Return([]*domain.AdRanking{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Limite inválido",
			path:       "/ads/top?limit=abc",
			setup:      func(*fixture) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Limite negativo",
			path:       "/ads/bottom?limit=-1",
			setup:      func(*fixture) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.allowOwnership()
			tt.setup(f)

			rec := f.get("/v1/accounts/" + testAccountID + tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetTrend_EntityID(t *testing.T) {
	f := newFixture(t)
	f.allowOwnership()

	f.insights.EXPECT().GetTrend(gomock.Any(), testAccountID, "c9", gomock.Any()).
		Return([]domain.TrendPoint{{Date: "2025-03-01", Spend: 10}}, nil)

	rec := f.get("/v1/accounts/" + testAccountID + "/trend?entity_id=c9")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "2025-03-01")
}

func TestGetBreakdown(t *testing.T) {
	t.Run("Dimensões repetidas são buscadas uma vez", func(t *testing.T) {
		f := newFixture(t)
		f.allowOwnership()

		f.insights.EXPECT().GetBreakdown(gomock.Any(), testAccountID, gomock.Any(), domain.BreakdownAge).
			Return([]domain.BreakdownRow{{Label: "25-34", Spend: 40}}, nil).Times(1)
		f.insights.EXPECT().GetBreakdown(gomock.Any(), testAccountID, gomock.Any(), domain.BreakdownDevice).
			Return([]domain.BreakdownRow{}, nil).Times(1)

		rec := f.get("/v1/accounts/" + testAccountID + "/breakdowns?dimension=age,device,age")

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string][]domain.BreakdownRow
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 2)
		assert.Equal(t, "25-34", body["age"][0].Label)
		assert.Empty(t, body["device"])
	})

	t.Run("Dimensão inválida", func(t *testing.T) {
		f := newFixture(t)
		f.allowOwnership()

		rec := f.get("/v1/accounts/" + testAccountID + "/breakdowns?dimension=age,region")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Sem dimensão", func(t *testing.T) {
		f := newFixture(t)
		f.allowOwnership()

		rec := f.get("/v1/accounts/" + testAccountID + "/breakdowns")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDiagnostic(t *testing.T) {
	t.Run("Nível ad", func(t *testing.T) {
		f := newFixture(t)
		f.allowOwnership()

		f.insights.EXPECT().GetDiagnostic(gomock.Any(), testAccountID, gomock.Any(), domain.DiagnosticLevelAd).
			Return(&domain.DiagnosticData{}, nil)

		rec := f.get("/v1/accounts/" + testAccountID + "/diagnostic?level=ad")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Nível inválido", func(t *testing.T) {
		f := newFixture(t)
		f.allowOwnership()

		rec := f.get("/v1/accounts/" + testAccountID + "/diagnostic?level=adset")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetManagerCampaigns_ErroInterno(t *testing.T) {
	f := newFixture(t)
	f.allowOwnership()

	f.insights.EXPECT().GetManagerCampaigns(gomock.Any(), testAccountID, gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	rec := f.get("/v1/accounts/" + testAccountID + "/campaigns/manager")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeError(t, rec).Code)
}

func TestAdAccountList(t *testing.T) {
	t.Run("Lista as contas do cliente do token", func(t *testing.T) {
		f := newFixture(t)

		f.accounts.EXPECT().ListAccounts(gomock.Any(), testClientID).
			Return([]*domain.AdAccount{{ID: testAccountID, Name: "Loja Centro"}}, nil)

		rec := f.get("/v1/accounts")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Loja Centro")
	})

	t.Run("Erro do banco", func(t *testing.T) {
		f := newFixture(t)

		f.accounts.EXPECT().ListAccounts(gomock.Any(), testClientID).
			Return(nil, account.NewAccountError(account.ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "falha"))

		rec := f.get("/v1/accounts")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeError(t, rec).Code)
	})
}

func TestSyncAccounts(t *testing.T) {
	f := newFixture(t)

	f.accounts.EXPECT().SyncAccounts(gomock.Any(), testClientID).
		Return(nil, account.NewAccountError(account.ErrMetaIntegration, apiErrors.ErrExternalService, "meta fora"))

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/accounts/sync", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrExternalService, decodeError(t, rec).Code)
}

func TestRouter_RotaInexistente(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/v1/nada")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeError(t, rec).Code)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(auth *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "Login com sucesso",
			body: `{"access_token":"tok"}`,
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().Login(gomock.Any(), "tok").Return(&domain.LoginResponse{Token: "jwt"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Corpo inválido",
			body:       `{`,
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
		{
			name:       "Sem access token",
			body:       `{"access_token":" "}`,
			setup:      func(*authmocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name: "Credenciais inválidas",
			body: `{"access_token":"errado"}`,
			setup: func(auth *authmocks.MockAuthenticator) {
				auth.EXPECT().Login(gomock.Any(), "errado").
					Return(nil, authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := authmocks.NewMockAuthenticator(gomock.NewController(t))
			tt.setup(auth)

			rec := httptest.NewRecorder()
			Login(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			} else {
				assert.Contains(t, rec.Body.String(), "jwt")
			}
		})
	}
}

type fakeCronJob struct {
	triggered bool
	accept    bool
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered = true
	return f.accept
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !f.accept}
}

func TestCronJobs(t *testing.T) {
	tests := []struct {
		name       string
		cronType   string
		accept     bool
		wantStatus int
	}{
		{name: "Dispara sincronização de contas", cronType: CronJobTypeAccounts, accept: true, wantStatus: http.StatusAccepted},
		{name: "Sincronização já em andamento", cronType: CronJobTypeAccounts, accept: false, wantStatus: http.StatusConflict},
		{name: "Tipo desconhecido", cronType: "ssotica", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{accept: tt.accept}
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{CronJobTypeAccounts: job})...))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.cronType == CronJobTypeAccounts, job.triggered)
		})
	}

	t.Run("Status", func(t *testing.T) {
		rt := router.New(router.WithRoutes(CronJobs(CronJobServices{CronJobTypeAccounts: &fakeCronJob{accept: true}})...))

		rec := httptest.NewRecorder()
		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"accounts"`)
	})
}

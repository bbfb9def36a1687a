package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/ads-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
)

const (
	testAccountID  = "Xk2JfP0aQ9mB"
	testAccountRef = "act_123456"
)

type fixture struct {
	service   *Service
	meta      *mocks.MockMetaInsighter
	resolver  *mocks.MockAccountResolver
	accounts  *repomocks.MockAccountMetricsRepository
	campaigns *repomocks.MockCampaignMetricsRepository
	adSets    *repomocks.MockAdSetMetricsRepository
	ads       *repomocks.MockAdMetricsRepository
	trends    *repomocks.MockTrendRepository
	rankings  *repomocks.MockAdRankingRepository
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		meta:      mocks.NewMockMetaInsighter(ctrl),
		resolver:  mocks.NewMockAccountResolver(ctrl),
		accounts:  repomocks.NewMockAccountMetricsRepository(ctrl),
		campaigns: repomocks.NewMockCampaignMetricsRepository(ctrl),
		adSets:    repomocks.NewMockAdSetMetricsRepository(ctrl),
		ads:       repomocks.NewMockAdMetricsRepository(ctrl),
		trends:    repomocks.NewMockTrendRepository(ctrl),
		rankings:  repomocks.NewMockAdRankingRepository(ctrl),
	}

	cfg := &config.Config{Cache: config.Cache{TopAdsDefaultLimit: 5}}

	f.service = NewService(cfg, f.meta, f.resolver, CacheRepositories{
		Accounts:  f.accounts,
		Campaigns: f.campaigns,
		AdSets:    f.adSets,
		Ads:       f.ads,
		Trends:    f.trends,
		Rankings:  f.rankings,
	})

	return f
}

func (f *fixture) expectResolve() {
	f.resolver.EXPECT().
		ResolveAccount(gomock.Any(), testAccountID).
		Return(&domain.AdAccount{ID: testAccountID, MetaAccountID: "123456"}, nil)
}

func march(t *testing.T) domain.Period {
	period, err := domain.ParsePeriod("2025-03-01", "2025-03-31")
	require.NoError(t, err)
	return period
}

func TestService_GetCampaignMetrics(t *testing.T) {
	ctx := context.Background()
	period := march(t)

	upstream := func() []*domain.CampaignSummary {
		return []*domain.CampaignSummary{
			{MetaCampaignID: "c1", Name: "Leads Março", Metrics: domain.Metrics{Spend: 300, Results: 30, CostPerResult: 10}},
			{MetaCampaignID: "c2", Name: "Mensagens", Metrics: domain.Metrics{Spend: 120, Results: 4, CostPerResult: 30}},
		}
	}

	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantIDs  []string
		wantErr  error
		validate func(t *testing.T, result []*domain.CampaignSummary)
	}{
		{
			name: "Cache frio - busca na API, grava e retorna",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return([]*domain.CampaignSummary{}, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).Return(upstream(), nil)
				f.campaigns.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rows []*domain.CampaignSummary) error {
						require.Len(t, rows, 2)
						for _, row := range rows {
							assert.Equal(t, testAccountID, row.AccountID, "o cache é indexado pelo id interno")
						}
						return nil
					})
			},
			wantIDs: []string{"c1", "c2"},
		},
		{
			name: "Cache quente - não chama a API nem grava",
			setup: func(f *fixture) {
				cached := upstream()
				for _, row := range cached {
					row.AccountID = testAccountID
				}
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(cached, nil)
			},
			wantIDs: []string{"c1", "c2"},
		},
		{
			name: "Rate limit - propaga o erro sem gravar",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).
					Return(nil, domain.NewRateLimitedError("campaign insights", 17, "User request limit reached"))
			},
			wantErr: domain.ErrRateLimited,
		},
		{
			name: "Erro da API - propaga como erro de upstream",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).
					Return(nil, domain.NewUpstreamError("campaign insights", 100, "Invalid parameter", nil))
			},
			wantErr: domain.ErrUpstream,
		},
		{
			name: "Conta não encontrada - retorna vazio sem erro",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, nil)
				f.resolver.EXPECT().ResolveAccount(gomock.Any(), testAccountID).Return(nil, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "API sem campanhas - não grava resultado vazio",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).Return([]*domain.CampaignSummary{}, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "Erro ao ler o cache - tratado como miss",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, errors.New("connection refused"))
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).Return(upstream(), nil)
				f.campaigns.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantIDs: []string{"c1", "c2"},
		},
		{
			name: "Erro ao gravar o cache - retorna os dados mesmo assim",
			setup: func(f *fixture) {
				f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(nil, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchCampaignLevel(gomock.Any(), testAccountRef, period).Return(upstream(), nil)
				f.campaigns.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))
			},
			wantIDs: []string{"c1", "c2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.GetCampaignMetrics(ctx, testAccountID, period)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			ids := make([]string, 0, len(result))
			for _, campaign := range result {
				ids = append(ids, campaign.MetaCampaignID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_RateLimitKeepsMessagePrefix(t *testing.T) {
	f := newFixture(t)
	period := march(t)

	f.accounts.EXPECT().Lookup(gomock.Any(), testAccountID, period, true).Return(nil, nil)
	f.expectResolve()
	f.meta.EXPECT().FetchAccountAggregate(gomock.Any(), testAccountRef, period).
		Return(nil, domain.NewRateLimitedError("account insights", 80004, "too many calls"))

	_, err := f.service.GetAccountSummary(context.Background(), testAccountID, period)

	require.Error(t, err)
	assert.True(t, domain.IsRateLimited(err))
	assert.Contains(t, err.Error(), "RATE_LIMIT")
}

func TestService_CacheWriteFailureIsCounted(t *testing.T) {
	f := newFixture(t)
	period := march(t)

	before := testutil.ToFloat64(metrics.CacheWriteFailuresTotal.WithLabelValues(levelAccount))

	summary := &domain.AccountSummary{DateFrom: period.From, DateTo: period.To, Metrics: domain.Metrics{Spend: 50, Results: 5}}

	f.accounts.EXPECT().Lookup(gomock.Any(), testAccountID, period, true).Return(nil, nil)
	f.expectResolve()
	f.meta.EXPECT().FetchAccountAggregate(gomock.Any(), testAccountRef, period).Return(summary, nil)
	f.accounts.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	result, err := f.service.GetAccountSummary(context.Background(), testAccountID, period)

	require.NoError(t, err)
	assert.Equal(t, 50.0, result.Spend)
	assert.Equal(t, testAccountID, result.AccountID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.CacheWriteFailuresTotal.WithLabelValues(levelAccount)))
}

func TestService_GetAccountSummary(t *testing.T) {
	period := march(t)

	t.Run("Sem dados na API retorna resumo zerado", func(t *testing.T) {
		f := newFixture(t)

		f.accounts.EXPECT().Lookup(gomock.Any(), testAccountID, period, true).Return(nil, nil)
		f.expectResolve()
		f.meta.EXPECT().FetchAccountAggregate(gomock.Any(), testAccountRef, period).Return(nil, nil)

		result, err := f.service.GetAccountSummary(context.Background(), testAccountID, period)

		require.NoError(t, err)
		assert.Equal(t, testAccountID, result.AccountID)
		assert.Zero(t, result.Spend)
		assert.Equal(t, period.From, result.DateFrom)
	})

	t.Run("Cache quente", func(t *testing.T) {
		f := newFixture(t)

		cached := &domain.AccountSummary{AccountID: testAccountID, Metrics: domain.Metrics{Spend: 900}}
		f.accounts.EXPECT().Lookup(gomock.Any(), testAccountID, period, true).Return(cached, nil)

		result, err := f.service.GetAccountSummary(context.Background(), testAccountID, period)

		require.NoError(t, err)
		assert.Same(t, cached, result)
	})
}

func TestService_GetAdSets(t *testing.T) {
	ctx := context.Background()
	period := march(t)

	allAdSets := func() []*domain.AdSetSummary {
		return []*domain.AdSetSummary{
			{MetaAdSetID: "s1", MetaCampaignID: "c1", Metrics: domain.Metrics{Spend: 10}},
			{MetaAdSetID: "s2", MetaCampaignID: "c2", Metrics: domain.Metrics{Spend: 40}},
			{MetaAdSetID: "s3", MetaCampaignID: "c1", Metrics: domain.Metrics{Spend: 25}},
		}
	}

	tests := []struct {
		name       string
		campaignID string
		setup      func(f *fixture)
		wantIDs    []string
	}{
		{
			name:       "Primeira consulta do dia busca todos e filtra pela campanha",
			campaignID: "c1",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(false, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchAdSetLevel(gomock.Any(), testAccountRef, period, "").Return(allAdSets(), nil)
				f.adSets.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, rows []*domain.AdSetSummary) error {
						assert.Len(t, rows, 3, "todos os conjuntos da conta devem ser gravados")
						return nil
					})
			},
			wantIDs: []string{"s3", "s1"},
		},
		{
			name:       "Conta já carregada hoje filtra no banco",
			campaignID: "c2",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(true, nil)
				f.adSets.EXPECT().LookupByCampaign(gomock.Any(), testAccountID, period, "c2").
					Return([]*domain.AdSetSummary{{MetaAdSetID: "s2", MetaCampaignID: "c2"}}, nil)
			},
			wantIDs: []string{"s2"},
		},
		{
			name:       "Conta carregada hoje e campanha sem conjuntos retorna vazio sem chamar a API",
			campaignID: "c9",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(true, nil)
				f.adSets.EXPECT().LookupByCampaign(gomock.Any(), testAccountID, period, "c9").Return([]*domain.AdSetSummary{}, nil)
			},
			wantIDs: []string{},
		},
		{
			name: "Sem filtro retorna todos ordenados por gasto",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(false, nil)
				f.expectResolve()
				f.meta.EXPECT().FetchAdSetLevel(gomock.Any(), testAccountRef, period, "").Return(allAdSets(), nil)
				f.adSets.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantIDs: []string{"s2", "s3", "s1"},
		},
		{
			name: "Sem filtro e conta já carregada hoje lê todos do banco",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(true, nil)
				f.adSets.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).
					Return([]*domain.AdSetSummary{{MetaAdSetID: "s2"}, {MetaAdSetID: "s3"}}, nil)
			},
			wantIDs: []string{"s2", "s3"},
		},
		{
			name:       "Erro ao verificar frescor cai para a API",
			campaignID: "c2",
			setup: func(f *fixture) {
				f.adSets.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(false, errors.New("timeout"))
				f.expectResolve()
				f.meta.EXPECT().FetchAdSetLevel(gomock.Any(), testAccountRef, period, "").Return(allAdSets(), nil)
				f.adSets.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantIDs: []string{"s2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.GetAdSets(ctx, testAccountID, period, tt.campaignID)
			require.NoError(t, err)

			ids := make([]string, 0, len(result))
			for _, adSet := range result {
				ids = append(ids, adSet.MetaAdSetID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestService_GetAds(t *testing.T) {
	period := march(t)

	t.Run("Busca todos e filtra pelo conjunto", func(t *testing.T) {
		f := newFixture(t)

		f.ads.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(false, nil)
		f.expectResolve()
		f.meta.EXPECT().FetchAdLevel(gomock.Any(), testAccountRef, period, "").Return([]*domain.AdSummary{
			{MetaAdID: "a1", MetaAdSetID: "s1", Metrics: domain.Metrics{Spend: 5}},
			{MetaAdID: "a2", MetaAdSetID: "s2", Metrics: domain.Metrics{Spend: 8}},
		}, nil)
		f.ads.EXPECT().UpsertMany(gomock.Any(), gomock.Len(2)).Return(nil)

		result, err := f.service.GetAds(context.Background(), testAccountID, period, "s2")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "a2", result[0].MetaAdID)
		assert.Equal(t, testAccountID, result[0].AccountID)
	})

	t.Run("Rate limit não grava", func(t *testing.T) {
		f := newFixture(t)

		f.ads.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(false, nil)
		f.expectResolve()
		f.meta.EXPECT().FetchAdLevel(gomock.Any(), testAccountRef, period, "").
			Return(nil, domain.NewRateLimitedError("ad level insights", 613, "Calls to this api have exceeded the rate limit"))

		_, err := f.service.GetAds(context.Background(), testAccountID, period, "")

		assert.True(t, domain.IsRateLimited(err))
	})
}

func TestService_TopAndBottomAds(t *testing.T) {
	ctx := context.Background()
	period := march(t)
	f := newFixture(t)

	candidates := []*domain.AdRanking{
		{MetaAdID: "a3", CostPerResult: 30, Results: 1},
		{MetaAdID: "a1", CostPerResult: 10, Results: 3},
		{MetaAdID: "a4", CostPerResult: 20, Results: 2},
		{MetaAdID: "a2", CostPerResult: 10, Results: 5},
	}

	var stored []*domain.AdRanking

	gomock.InOrder(
		f.rankings.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return([]*domain.AdRanking{}, nil),
		f.rankings.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).DoAndReturn(
			func(context.Context, string, domain.Period, bool) ([]*domain.AdRanking, error) {
				return stored, nil
			}),
	)
	f.expectResolve()
	f.meta.EXPECT().FetchTopAdsCandidates(gomock.Any(), testAccountRef, period).Return(candidates, nil).Times(1)
	f.rankings.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rows []*domain.AdRanking) error {
			stored = append([]*domain.AdRanking{}, rows...)
			return nil
		})

	top, err := f.service.GetTopAds(ctx, testAccountID, period, 0)
	require.NoError(t, err)

	bottom, err := f.service.GetBottomAds(ctx, testAccountID, period, 0)
	require.NoError(t, err)

	ids := func(rows []*domain.AdRanking) []string {
		result := make([]string, 0, len(rows))
		for _, row := range rows {
			result = append(result, row.MetaAdID)
		}
		return result
	}

	assert.Equal(t, []string{"a1", "a2", "a4", "a3"}, ids(top))
	assert.Equal(t, []string{"a3", "a4", "a2", "a1"}, ids(bottom), "piores devem ser o inverso exato dos melhores")
}

func TestService_TopAdsLimit(t *testing.T) {
	f := newFixture(t)
	period := march(t)

	cached := []*domain.AdRanking{
		{MetaAdID: "a1", CostPerResult: 1},
		{MetaAdID: "a2", CostPerResult: 2},
		{MetaAdID: "a3", CostPerResult: 3},
	}
	f.rankings.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(cached, nil).Times(2)

	top, err := f.service.GetTopAds(context.Background(), testAccountID, period, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "a1", top[0].MetaAdID)

	bottom, err := f.service.GetBottomAds(context.Background(), testAccountID, period, 1)
	require.NoError(t, err)
	require.Len(t, bottom, 1)
	assert.Equal(t, "a3", bottom[0].MetaAdID)
}

func TestService_GetTrend(t *testing.T) {
	period := march(t)

	t.Run("Série da conta inteira", func(t *testing.T) {
		f := newFixture(t)

		points := []domain.TrendPoint{{Date: "2025-03-01", Spend: 10, Results: 2, CPL: 5}}

		f.trends.EXPECT().Lookup(gomock.Any(), testAccountID, "", period, true).Return(nil, nil)
		f.expectResolve()
		f.meta.EXPECT().FetchDailyTrend(gomock.Any(), domain.TrendTarget{AccountRef: testAccountRef}, period).Return(points, nil)
		f.trends.EXPECT().UpsertMany(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rows []*domain.TrendSeries) error {
				require.Len(t, rows, 1)
				assert.Equal(t, "", rows[0].EntityID)
				assert.Equal(t, points, rows[0].Points)
				return nil
			})

		result, err := f.service.GetTrend(context.Background(), testAccountID, "", period)

		require.NoError(t, err)
		assert.Equal(t, points, result)
	})

	t.Run("Série de campanha em cache", func(t *testing.T) {
		f := newFixture(t)

		cached := &domain.TrendSeries{EntityID: "c1", Points: []domain.TrendPoint{{Date: "2025-03-02", Spend: 3}}}
		f.trends.EXPECT().Lookup(gomock.Any(), testAccountID, "c1", period, true).Return(cached, nil)

		result, err := f.service.GetTrend(context.Background(), testAccountID, "c1", period)

		require.NoError(t, err)
		assert.Equal(t, cached.Points, result)
	})
}

func TestService_GetBreakdown(t *testing.T) {
	period := march(t)

	t.Run("Sempre ao vivo", func(t *testing.T) {
		f := newFixture(t)

		rows := []domain.BreakdownRow{{Label: "Feed do Facebook", Spend: 20, Results: 4, CPL: 5}}
		f.expectResolve()
		f.meta.EXPECT().FetchBreakdown(gomock.Any(), testAccountRef, period, domain.BreakdownPlacement).Return(rows, nil)

		result, err := f.service.GetBreakdown(context.Background(), testAccountID, period, domain.BreakdownPlacement)

		require.NoError(t, err)
		assert.Equal(t, rows, result)
	})

	t.Run("Conta excluída retorna vazio", func(t *testing.T) {
		f := newFixture(t)

		f.resolver.EXPECT().ResolveAccount(gomock.Any(), testAccountID).Return(nil, nil)

		result, err := f.service.GetBreakdown(context.Background(), testAccountID, period, domain.BreakdownAge)

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestService_GetManagerCampaigns(t *testing.T) {
	f := newFixture(t)
	period := march(t)

	daily := 50.0
	cached := []*domain.CampaignSummary{
		{AccountID: testAccountID, MetaCampaignID: "c1", Name: "Leads", Metrics: domain.Metrics{Spend: 100}},
	}

	f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return(cached, nil)
	f.expectResolve()
	f.meta.EXPECT().FetchCampaignBudgets(gomock.Any(), testAccountRef).Return([]*domain.CampaignBudget{
		{MetaCampaignID: "c2", Name: "Pausada", Status: "PAUSED"},
		{MetaCampaignID: "c1", Name: "Leads", Status: "ACTIVE", DailyBudget: &daily},
	}, nil)

	result, err := f.service.GetManagerCampaigns(context.Background(), testAccountID, period)

	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "c1", result[0].MetaCampaignID)
	assert.Equal(t, "ACTIVE", result[0].Status)
	assert.Equal(t, 100.0, result[0].Spend)
	require.NotNil(t, result[0].DailyBudget)
	assert.Equal(t, 50.0, *result[0].DailyBudget)

	assert.Equal(t, "c2", result[1].MetaCampaignID)
	assert.Equal(t, "PAUSED", result[1].Status)
	assert.Zero(t, result[1].Spend)

	assert.Empty(t, cached[0].Status, "a linha do cache não deve ser alterada")
}

func TestService_GetDiagnostic(t *testing.T) {
	period := march(t)

	t.Run("Nível campanha", func(t *testing.T) {
		f := newFixture(t)

		f.campaigns.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return([]*domain.CampaignSummary{
			{MetaCampaignID: "c1", Metrics: domain.Metrics{Spend: 100, Results: 20, CostPerResult: 5}},
			{MetaCampaignID: "c2", Metrics: domain.Metrics{Spend: 90, Results: 2, CostPerResult: 45}},
			{MetaCampaignID: "c3", Metrics: domain.Metrics{Spend: 15}},
		}, nil)

		result, err := f.service.GetDiagnostic(context.Background(), testAccountID, period, domain.DiagnosticLevelCampaign)

		require.NoError(t, err)
		assert.Len(t, result.Items, 3)
		assert.Equal(t, []domain.HistogramBin{
			{Range: "≤ R$10", Count: 1},
			{Range: "> R$40", Count: 1},
		}, result.Histogram)
	})

	t.Run("Nível anúncio", func(t *testing.T) {
		f := newFixture(t)

		f.ads.EXPECT().ExistsFreshToday(gomock.Any(), testAccountID, period).Return(true, nil)
		f.ads.EXPECT().LookupMany(gomock.Any(), testAccountID, period, true).Return([]*domain.AdSummary{
			{MetaAdID: "a1", CampaignName: "Leads", AdSetName: "Público 1", Metrics: domain.Metrics{Spend: 30, Results: 2, CostPerResult: 15}},
		}, nil)

		result, err := f.service.GetDiagnostic(context.Background(), testAccountID, period, domain.DiagnosticLevelAd)

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, domain.DiagnosticLevelAd, result.Items[0].Type)
		assert.Equal(t, "Público 1", result.Items[0].AdSetName)
		assert.Equal(t, []domain.HistogramBin{{Range: "R$10–20", Count: 1}}, result.Histogram)
	})

	t.Run("Nível inválido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.GetDiagnostic(context.Background(), testAccountID, period, "adset")

		assert.ErrorIs(t, err, domain.ErrInvalidDiagnosticLevel)
	})
}

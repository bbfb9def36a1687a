package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func testPeriod(t *testing.T) domain.Period {
	t.Helper()

	period, err := domain.ParsePeriod("2025-01-01", "2025-01-31")
	require.NoError(t, err)

	return period
}

func newIntegrator(t *testing.T) (*MetaIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Meta.InsightsLimit = 200

	return New(cfg, client), client
}

func leads(n string) []metadomain.Action {
	return []metadomain.Action{{ActionType: "lead", Value: n}}
}

func TestFetchCampaignLevel(t *testing.T) {
	ctx := context.Background()
	period := testPeriod(t)

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, result []*domain.CampaignSummary, err error)
	}{
		{
			name: "Ordena por gasto e aplica nome padrão",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetInsights(ctx, "campaign level", "act_1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, params *metaclient.InsightParams) ([]metadomain.InsightRow, error) {
						assert.Equal(t, "campaign", params.Level)
						assert.Equal(t, []metaclient.Filter{metaclient.SpendFilter}, params.Filters)
						assert.Equal(t, 200, params.Limit)
						return []metadomain.InsightRow{
							{CampaignID: "c1", CampaignName: "Pequena", Spend: "10", Actions: leads("1")},
							{CampaignID: "c2", Spend: "90.5", Actions: leads("3"), Impressions: "1000", CTR: "1.5"},
						}, nil
					})
			},
			validate: func(t *testing.T, result []*domain.CampaignSummary, err error) {
				require.NoError(t, err)
				require.Len(t, result, 2)
				assert.Equal(t, "c2", result[0].MetaCampaignID)
				assert.Equal(t, "Campanha sem nome", result[0].Name)
				assert.Equal(t, int64(3), result[0].Results)
				assert.Equal(t, 30.17, result[0].CostPerResult)
				assert.Equal(t, int64(1000), result[0].Impressions)
				assert.Equal(t, "c1", result[1].MetaCampaignID)
			},
		},
		{
			name: "Rate limit é propagado sem alteração",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().
					GetInsights(ctx, "campaign level", "act_1", gomock.Any()).
					Return(nil, domain.NewRateLimitedError("campaign level", 17, "limit"))
			},
			validate: func(t *testing.T, result []*domain.CampaignSummary, err error) {
				assert.Nil(t, result)
				assert.True(t, domain.IsRateLimited(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			tt.setup(client)

			result, err := integrator.FetchCampaignLevel(ctx, "1", period)
			tt.validate(t, result, err)
		})
	}
}

func TestFetchAccountAggregate_SemLinhas(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetInsights(ctx, "account insights", "act_1", gomock.Any()).Return([]metadomain.InsightRow{}, nil)

	summary, err := integrator.FetchAccountAggregate(ctx, "act_1", testPeriod(t))

	require.NoError(t, err)
	assert.Nil(t, summary)
}

func TestFetchAdSetLevel_JuntaListagemEInsights(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetAdSets(ctx, "act_1", "c1").Return([]metadomain.AdSetListItem{
		{ID: "s1", Name: "Com gasto", EffectiveStatus: "ACTIVE", DailyBudget: "5000", CampaignID: "c1", Campaign: &metadomain.CampaignRef{ID: "c1", Name: "Campanha 1"}},
		{ID: "s2", Name: "Sem gasto", EffectiveStatus: "PAUSED", CampaignID: "c1"},
	}, nil)
	client.EXPECT().
		GetInsights(ctx, "adsets insights", "act_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params *metaclient.InsightParams) ([]metadomain.InsightRow, error) {
			assert.Len(t, params.Filters, 2)
			assert.Equal(t, "campaign.id", params.Filters[1].Field)
			return []metadomain.InsightRow{{AdSetID: "s1", Spend: "20", Actions: leads("4")}}, nil
		})

	adSets, err := integrator.FetchAdSetLevel(ctx, "act_1", testPeriod(t), "c1")

	require.NoError(t, err)
	require.Len(t, adSets, 2)
	assert.Equal(t, 20.0, adSets[0].Spend)
	assert.Equal(t, int64(4), adSets[0].Results)
	assert.Equal(t, "Campanha 1", adSets[0].CampaignName)
	require.NotNil(t, adSets[0].DailyBudget)
	assert.Equal(t, 50.0, *adSets[0].DailyBudget)
	assert.Equal(t, 0.0, adSets[1].Spend)
	assert.Nil(t, adSets[1].DailyBudget)
}

func TestFetchAdSetLevel_ErroNaListagem(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetAdSets(ctx, "act_1", "").Return(nil, domain.NewUpstreamError("adsets list", 100, "bad", nil))
	client.EXPECT().GetInsights(ctx, "adsets insights", "act_1", gomock.Any()).Return(nil, nil)

	adSets, err := integrator.FetchAdSetLevel(ctx, "act_1", testPeriod(t), "")

	assert.Nil(t, adSets)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestFetchAdLevel_StatusIndisponivel(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetInsights(ctx, "ad level insights", "act_1", gomock.Any()).Return([]metadomain.InsightRow{
		{AdID: "a1", AdSetID: "s1", Spend: "15", Actions: leads("3")},
		{AdID: "a2", AdName: "Zerado", Spend: "0"},
	}, nil)
	client.EXPECT().GetAdStatuses(ctx, []string{"a1", "a2"}).Return(nil, errors.New("timeout"))

	ads, err := integrator.FetchAdLevel(ctx, "act_1", testPeriod(t), "")

	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "ACTIVE", ads[0].Status)
	assert.Equal(t, "Anúncio sem nome", ads[0].Name)
	assert.Equal(t, 5.0, ads[0].CostPerResult)
}

func TestFetchTopAdsCandidates(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetInsights(ctx, "top ads insights", "act_1", gomock.Any()).Return([]metadomain.InsightRow{
		{AdID: "a1", AdName: "Bom", Spend: "10", Actions: leads("5")},
		{AdID: "a2", AdName: "Sem resultado", Spend: "10"},
	}, nil)
	client.EXPECT().GetAdThumbnails(ctx, []string{"a1", "a2"}).Return(map[string]metadomain.AdCreativeNode{
		"a1": {ID: "a1", Creative: &metadomain.AdCreative{ThumbnailURL: "https://img/a1.jpg"}},
	}, nil)

	candidates, err := integrator.FetchTopAdsCandidates(ctx, "act_1", testPeriod(t))

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "a1", candidates[0].MetaAdID)
	require.NotNil(t, candidates[0].ImageURL)
	assert.Equal(t, "https://img/a1.jpg", *candidates[0].ImageURL)
	assert.Equal(t, 2.0, candidates[0].CostPerResult)
}

func TestFetchDailyTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("Conta inteira usa level=account", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GetInsights(ctx, "account daily", "act_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params *metaclient.InsightParams) ([]metadomain.InsightRow, error) {
				assert.Equal(t, "account", params.Level)
				assert.Equal(t, 1, params.TimeIncrement)
				return []metadomain.InsightRow{{DateStart: "2025-01-01", Spend: "10", Actions: leads("2")}}, nil
			})

		points, err := integrator.FetchDailyTrend(ctx, domain.TrendTarget{AccountRef: "1"}, testPeriod(t))

		require.NoError(t, err)
		assert.Equal(t, []domain.TrendPoint{{Date: "2025-01-01", Spend: 10, Results: 2, CPL: 5}}, points)
	})

	t.Run("Entidade usa o próprio id", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GetInsights(ctx, "entity daily insights", "c1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, params *metaclient.InsightParams) ([]metadomain.InsightRow, error) {
				assert.Empty(t, params.Level)
				return nil, nil
			})

		points, err := integrator.FetchDailyTrend(ctx, domain.TrendTarget{AccountRef: "act_1", EntityID: "c1"}, testPeriod(t))

		require.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestFetchBreakdown_AgrupaPorRotulo(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().
		GetInsights(ctx, "breakdown/placement", "act_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, params *metaclient.InsightParams) ([]metadomain.InsightRow, error) {
			assert.Equal(t, []string{"publisher_platform", "platform_position"}, params.Breakdowns)
			return []metadomain.InsightRow{
				{PublisherPlatform: "instagram", PlatformPosition: "ig_search", Spend: "10", Actions: leads("1")},
				{PublisherPlatform: "instagram", PlatformPosition: "ig_other", Spend: "30", Actions: leads("1")},
				{PublisherPlatform: "facebook", PlatformPosition: "feed", Spend: "25", Actions: leads("5")},
				{PublisherPlatform: "messenger", PlatformPosition: "inbox", Spend: "0"},
			}, nil
		})

	rows, err := integrator.FetchBreakdown(ctx, "act_1", testPeriod(t), domain.BreakdownPlacement)

	require.NoError(t, err)
	assert.Equal(t, []domain.BreakdownRow{
		{Label: "Instagram", Spend: 40, Results: 2, CPL: 20},
		{Label: "Facebook Feed", Spend: 25, Results: 5, CPL: 5},
	}, rows)
}

func TestFetchAccountsForTenant(t *testing.T) {
	ctx := context.Background()
	integrator, client := newIntegrator(t)

	client.EXPECT().GetAdAccounts(ctx).Return([]metadomain.AdAccount{
		{ID: "act_1", Name: "Conta", AccountStatus: 1, Currency: "BRL", TimezoneName: "America/Sao_Paulo"},
	}, nil)

	accounts, err := integrator.FetchAccountsForTenant(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.AccountInfo{
		{MetaAccountID: "act_1", Name: "Conta", StatusCode: 1, Currency: "BRL", TimezoneName: "America/Sao_Paulo"},
	}, accounts)
}

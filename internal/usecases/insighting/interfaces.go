package insighting

import (
	"context"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// MetaInsighter é a parte do integrador da Meta usada pelo cache de leitura
type MetaInsighter interface {
	FetchAccountAggregate(ctx context.Context, accountRef string, period domain.Period) (*domain.AccountSummary, error)
	FetchCampaignLevel(ctx context.Context, accountRef string, period domain.Period) ([]*domain.CampaignSummary, error)
	FetchCampaignBudgets(ctx context.Context, accountRef string) ([]*domain.CampaignBudget, error)
	FetchAdSetLevel(ctx context.Context, accountRef string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error)
	FetchAdLevel(ctx context.Context, accountRef string, period domain.Period, adSetID string) ([]*domain.AdSummary, error)
	FetchDailyTrend(ctx context.Context, target domain.TrendTarget, period domain.Period) ([]domain.TrendPoint, error)
	FetchTopAdsCandidates(ctx context.Context, accountRef string, period domain.Period) ([]*domain.AdRanking, error)
	FetchBreakdown(ctx context.Context, accountRef string, period domain.Period, dimension domain.BreakdownDimension) ([]domain.BreakdownRow, error)
}

// AccountResolver devolve nil quando a conta não existe ou está na lista de exclusão
type AccountResolver interface {
	ResolveAccount(ctx context.Context, accountID string) (*domain.AdAccount, error)
}

// Insighter é a superfície de consulta usada pelos handlers
type Insighter interface {
	GetAccountSummary(ctx context.Context, accountID string, period domain.Period) (*domain.AccountSummary, error)
	GetCampaignMetrics(ctx context.Context, accountID string, period domain.Period) ([]*domain.CampaignSummary, error)
	GetManagerCampaigns(ctx context.Context, accountID string, period domain.Period) ([]*domain.CampaignSummary, error)
	GetAdSets(ctx context.Context, accountID string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error)
	GetAds(ctx context.Context, accountID string, period domain.Period, adSetID string) ([]*domain.AdSummary, error)
	GetTrend(ctx context.Context, accountID, entityID string, period domain.Period) ([]domain.TrendPoint, error)
	GetTopAds(ctx context.Context, accountID string, period domain.Period, limit int) ([]*domain.AdRanking, error)
	GetBottomAds(ctx context.Context, accountID string, period domain.Period, limit int) ([]*domain.AdRanking, error)
	GetBreakdown(ctx context.Context, accountID string, period domain.Period, dimension domain.BreakdownDimension) ([]domain.BreakdownRow, error)
	GetDiagnostic(ctx context.Context, accountID string, period domain.Period, level domain.DiagnosticLevel) (*domain.DiagnosticData, error)
}

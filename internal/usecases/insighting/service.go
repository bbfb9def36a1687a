package insighting

import (
	"context"
	"sort"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
)

const (
	levelAccount  = "account"
	levelCampaign = "campaign"
	levelAdSet    = "adset"
	levelAd       = "ad"
	levelTrend    = "trend"
	levelRanking  = "ranking"
)

// CacheRepositories agrupa as tabelas de cache, uma por nível
type CacheRepositories struct {
	Accounts  repository.AccountMetricsRepository
	Campaigns repository.CampaignMetricsRepository
	AdSets    repository.AdSetMetricsRepository
	Ads       repository.AdMetricsRepository
	Trends    repository.TrendRepository
	Rankings  repository.AdRankingRepository
}

// Service é o cache de leitura entre a UI e a Graph API.
// Toda consulta segue CHECK_CACHE -> RESOLVE_ACCOUNT -> FETCH_UPSTREAM -> POPULATE_CACHE.
type Service struct {
	cfg         *config.Config
	metaService MetaInsighter
	accounts    AccountResolver
	cache       CacheRepositories
}

var _ Insighter = (*Service)(nil)

func NewService(
	cfg *config.Config,
	metaService MetaInsighter,
	accounts AccountResolver,
	cache CacheRepositories,
) *Service {
	return &Service{
		cfg:         cfg,
		metaService: metaService,
		accounts:    accounts,
		cache:       cache,
	}
}

func (s *Service) GetAccountSummary(ctx context.Context, accountID string, period domain.Period) (*domain.AccountSummary, error) {
	cached, hit := checkCache(ctx, levelAccount, accountID, period, func() (*domain.AccountSummary, error) {
		return s.cache.Accounts.Lookup(ctx, accountID, period, true)
	}, func(summary *domain.AccountSummary) bool { return summary != nil })
	if hit {
		return cached, nil
	}

	account, err := s.resolve(ctx, levelAccount, accountID)
	if err != nil || account == nil {
		return emptyAccountSummary(accountID, period), err
	}

	summary, err := s.metaService.FetchAccountAggregate(ctx, account.MetaRef(), period)
	if err != nil {
		return nil, err
	}

	if summary == nil {
		return emptyAccountSummary(accountID, period), nil
	}

	summary.AccountID = accountID
	s.populate(ctx, levelAccount, accountID, func() error {
		return s.cache.Accounts.UpsertMany(ctx, []*domain.AccountSummary{summary})
	})

	return summary, nil
}

func (s *Service) GetCampaignMetrics(ctx context.Context, accountID string, period domain.Period) ([]*domain.CampaignSummary, error) {
	cached, hit := checkCache(ctx, levelCampaign, accountID, period, func() ([]*domain.CampaignSummary, error) {
		return s.cache.Campaigns.LookupMany(ctx, accountID, period, true)
	}, notEmpty[*domain.CampaignSummary])
	if hit {
		return cached, nil
	}

	account, err := s.resolve(ctx, levelCampaign, accountID)
	if err != nil || account == nil {
		return []*domain.CampaignSummary{}, err
	}

	campaigns, err := s.metaService.FetchCampaignLevel(ctx, account.MetaRef(), period)
	if err != nil {
		return nil, err
	}

	if len(campaigns) == 0 {
		return []*domain.CampaignSummary{}, nil
	}

	for _, campaign := range campaigns {
		campaign.AccountID = accountID
	}

	s.populate(ctx, levelCampaign, accountID, func() error {
		return s.cache.Campaigns.UpsertMany(ctx, campaigns)
	})

	return campaigns, nil
}

// GetManagerCampaigns lista todas as campanhas da conta, inclusive as sem gasto,
// com o orçamento atual e as métricas do período
func (s *Service) GetManagerCampaigns(ctx context.Context, accountID string, period domain.Period) ([]*domain.CampaignSummary, error) {
	campaigns, err := s.GetCampaignMetrics(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	account, err := s.resolve(ctx, levelCampaign, accountID)
	if err != nil || account == nil {
		return []*domain.CampaignSummary{}, err
	}

	budgets, err := s.metaService.FetchCampaignBudgets(ctx, account.MetaRef())
	if err != nil {
		return nil, err
	}

	return joinCampaignBudgets(accountID, period, campaigns, budgets), nil
}

func joinCampaignBudgets(
	accountID string,
	period domain.Period,
	campaigns []*domain.CampaignSummary,
	budgets []*domain.CampaignBudget,
) []*domain.CampaignSummary {
	metricsByID := make(map[string]*domain.CampaignSummary, len(campaigns))
	for _, campaign := range campaigns {
		metricsByID[campaign.MetaCampaignID] = campaign
	}

	joined := make([]*domain.CampaignSummary, 0, len(budgets))
	seen := make(map[string]struct{}, len(budgets))

	for _, budget := range budgets {
		seen[budget.MetaCampaignID] = struct{}{}

		campaign := &domain.CampaignSummary{
			AccountID:      accountID,
			MetaCampaignID: budget.MetaCampaignID,
			Name:           budget.Name,
			DateFrom:       period.From,
			DateTo:         period.To,
		}

		if cached, ok := metricsByID[budget.MetaCampaignID]; ok {
			merged := *cached
			campaign = &merged
			if budget.Name != "" {
				campaign.Name = budget.Name
			}
		}

		campaign.Status = budget.Status
		campaign.DailyBudget = budget.DailyBudget
		campaign.LifetimeBudget = budget.LifetimeBudget

		joined = append(joined, campaign)
	}

	// campanhas com gasto no período que já não aparecem na listagem
	for _, campaign := range campaigns {
		if _, ok := seen[campaign.MetaCampaignID]; !ok {
			joined = append(joined, campaign)
		}
	}

	sort.SliceStable(joined, func(i, j int) bool {
		if joined[i].Spend != joined[j].Spend {
			return joined[i].Spend > joined[j].Spend
		}
		return joined[i].Name < joined[j].Name
	})

	return joined
}

// GetAdSets busca todos os conjuntos da conta na primeira consulta do dia e
// filtra pela campanha no banco nas seguintes
func (s *Service) GetAdSets(ctx context.Context, accountID string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error) {
	cached, hit := checkFetchAll(ctx, levelAdSet, accountID, period,
		func() (bool, error) { return s.cache.AdSets.ExistsFreshToday(ctx, accountID, period) },
		func() ([]*domain.AdSetSummary, error) {
			if campaignID == "" {
				return s.cache.AdSets.LookupMany(ctx, accountID, period, true)
			}
			return s.cache.AdSets.LookupByCampaign(ctx, accountID, period, campaignID)
		},
	)
	if hit {
		return cached, nil
	}

	account, err := s.resolve(ctx, levelAdSet, accountID)
	if err != nil || account == nil {
		return []*domain.AdSetSummary{}, err
	}

	adSets, err := s.metaService.FetchAdSetLevel(ctx, account.MetaRef(), period, "")
	if err != nil {
		return nil, err
	}

	if len(adSets) == 0 {
		return []*domain.AdSetSummary{}, nil
	}

	for _, adSet := range adSets {
		adSet.AccountID = accountID
	}

	s.populate(ctx, levelAdSet, accountID, func() error {
		return s.cache.AdSets.UpsertMany(ctx, adSets)
	})

	filtered := make([]*domain.AdSetSummary, 0, len(adSets))
	for _, adSet := range adSets {
		if campaignID == "" || adSet.MetaCampaignID == campaignID {
			filtered = append(filtered, adSet)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Spend != filtered[j].Spend {
			return filtered[i].Spend > filtered[j].Spend
		}
		return filtered[i].MetaAdSetID < filtered[j].MetaAdSetID
	})

	return filtered, nil
}

// GetAds segue a mesma estratégia de GetAdSets, filtrando pelo conjunto
func (s *Service) GetAds(ctx context.Context, accountID string, period domain.Period, adSetID string) ([]*domain.AdSummary, error) {
	cached, hit := checkFetchAll(ctx, levelAd, accountID, period,
		func() (bool, error) { return s.cache.Ads.ExistsFreshToday(ctx, accountID, period) },
		func() ([]*domain.AdSummary, error) {
			if adSetID == "" {
				return s.cache.Ads.LookupMany(ctx, accountID, period, true)
			}
			return s.cache.Ads.LookupByAdSet(ctx, accountID, period, adSetID)
		},
	)
	if hit {
		return cached, nil
	}

	account, err := s.resolve(ctx, levelAd, accountID)
	if err != nil || account == nil {
		return []*domain.AdSummary{}, err
	}

	ads, err := s.metaService.FetchAdLevel(ctx, account.MetaRef(), period, "")
	if err != nil {
		return nil, err
	}

	if len(ads) == 0 {
		return []*domain.AdSummary{}, nil
	}

	for _, ad := range ads {
		ad.AccountID = accountID
	}

	s.populate(ctx, levelAd, accountID, func() error {
		return s.cache.Ads.UpsertMany(ctx, ads)
	})

	filtered := make([]*domain.AdSummary, 0, len(ads))
	for _, ad := range ads {
		if adSetID == "" || ad.MetaAdSetID == adSetID {
			filtered = append(filtered, ad)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Spend != filtered[j].Spend {
			return filtered[i].Spend > filtered[j].Spend
		}
		return filtered[i].MetaAdID < filtered[j].MetaAdID
	})

	return filtered, nil
}

// GetTrend devolve a série diária da conta (entityID vazio) ou de uma campanha, conjunto ou anúncio
func (s *Service) GetTrend(ctx context.Context, accountID, entityID string, period domain.Period) ([]domain.TrendPoint, error) {
	cached, hit := checkCache(ctx, levelTrend, accountID, period, func() (*domain.TrendSeries, error) {
		return s.cache.Trends.Lookup(ctx, accountID, entityID, period, true)
	}, func(series *domain.TrendSeries) bool { return series != nil })
	if hit {
		return cached.Points, nil
	}

	account, err := s.resolve(ctx, levelTrend, accountID)
	if err != nil || account == nil {
		return []domain.TrendPoint{}, err
	}

	points, err := s.metaService.FetchDailyTrend(ctx, domain.TrendTarget{AccountRef: account.MetaRef(), EntityID: entityID}, period)
	if err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return []domain.TrendPoint{}, nil
	}

	series := &domain.TrendSeries{
		AccountID: accountID,
		EntityID:  entityID,
		DateFrom:  period.From,
		DateTo:    period.To,
		Points:    points,
	}

	s.populate(ctx, levelTrend, accountID, func() error {
		return s.cache.Trends.UpsertMany(ctx, []*domain.TrendSeries{series})
	})

	return points, nil
}

// GetTopAds devolve os anúncios com menor custo por resultado
func (s *Service) GetTopAds(ctx context.Context, accountID string, period domain.Period, limit int) ([]*domain.AdRanking, error) {
	candidates, err := s.rankingCandidates(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	return limitRanking(candidates, s.rankingLimit(limit)), nil
}

// GetBottomAds usa os mesmos candidatos de GetTopAds na ordem inversa
func (s *Service) GetBottomAds(ctx context.Context, accountID string, period domain.Period, limit int) ([]*domain.AdRanking, error) {
	candidates, err := s.rankingCandidates(ctx, accountID, period)
	if err != nil {
		return nil, err
	}

	reversed := make([]*domain.AdRanking, len(candidates))
	for i, candidate := range candidates {
		reversed[len(candidates)-1-i] = candidate
	}

	return limitRanking(reversed, s.rankingLimit(limit)), nil
}

// rankingCandidates devolve todos os candidatos ordenados por custo por resultado crescente
func (s *Service) rankingCandidates(ctx context.Context, accountID string, period domain.Period) ([]*domain.AdRanking, error) {
	cached, hit := checkCache(ctx, levelRanking, accountID, period, func() ([]*domain.AdRanking, error) {
		return s.cache.Rankings.LookupMany(ctx, accountID, period, true)
	}, notEmpty[*domain.AdRanking])
	if hit {
		return cached, nil
	}

	account, err := s.resolve(ctx, levelRanking, accountID)
	if err != nil || account == nil {
		return []*domain.AdRanking{}, err
	}

	candidates, err := s.metaService.FetchTopAdsCandidates(ctx, account.MetaRef(), period)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return []*domain.AdRanking{}, nil
	}

	for _, candidate := range candidates {
		candidate.AccountID = accountID
	}
	sortByCostPerResult(candidates)

	s.populate(ctx, levelRanking, accountID, func() error {
		return s.cache.Rankings.UpsertMany(ctx, candidates)
	})

	return candidates, nil
}

func (s *Service) rankingLimit(limit int) int {
	if limit > 0 {
		return limit
	}

	return s.cfg.Cache.TopAdsDefaultLimit
}

// GetBreakdown é sempre buscado ao vivo. Use um BreakdownMemo para reaproveitar
// dimensões dentro de uma mesma requisição.
func (s *Service) GetBreakdown(ctx context.Context, accountID string, period domain.Period, dimension domain.BreakdownDimension) ([]domain.BreakdownRow, error) {
	account, err := s.resolve(ctx, "breakdown", accountID)
	if err != nil || account == nil {
		return []domain.BreakdownRow{}, err
	}

	rows, err := s.metaService.FetchBreakdown(ctx, account.MetaRef(), period, dimension)
	if err != nil {
		return nil, err
	}

	if rows == nil {
		return []domain.BreakdownRow{}, nil
	}

	return rows, nil
}

// GetDiagnostic monta os itens do nível pedido e o histograma de CPL
func (s *Service) GetDiagnostic(ctx context.Context, accountID string, period domain.Period, level domain.DiagnosticLevel) (*domain.DiagnosticData, error) {
	items := make([]domain.DiagnosticItem, 0)

	switch level {
	case domain.DiagnosticLevelAd:
		ads, err := s.GetAds(ctx, accountID, period, "")
		if err != nil {
			return nil, err
		}

		for _, ad := range ads {
			items = append(items, domain.DiagnosticItem{
				ID:           ad.MetaAdID,
				Name:         ad.Name,
				Status:       ad.Status,
				Spend:        ad.Spend,
				CPL:          ad.CostPerResult,
				Results:      ad.Results,
				Type:         domain.DiagnosticLevelAd,
				CampaignName: ad.CampaignName,
				AdSetName:    ad.AdSetName,
			})
		}
	case domain.DiagnosticLevelCampaign:
		campaigns, err := s.GetCampaignMetrics(ctx, accountID, period)
		if err != nil {
			return nil, err
		}

		for _, campaign := range campaigns {
			items = append(items, domain.DiagnosticItem{
				ID:      campaign.MetaCampaignID,
				Name:    campaign.Name,
				Status:  campaign.Status,
				Spend:   campaign.Spend,
				CPL:     campaign.CostPerResult,
				Results: campaign.Results,
				Type:    domain.DiagnosticLevelCampaign,
			})
		}
	default:
		return nil, domain.ErrInvalidDiagnosticLevel
	}

	return &domain.DiagnosticData{
		Items:     items,
		Histogram: domain.BuildHistogram(items),
	}, nil
}

// resolve devolve nil, nil quando a conta não existe ou está excluída (FAIL)
func (s *Service) resolve(ctx context.Context, level, accountID string) (*domain.AdAccount, error) {
	account, err := s.accounts.ResolveAccount(ctx, accountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"level":      level,
		}).Error("insights: erro ao resolver a conta")
		return nil, err
	}

	if account == nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"account_id": accountID,
			"level":      level,
		}).Warn("insights: conta não encontrada ou excluída, retornando vazio")
		return nil, nil
	}

	return account, nil
}

// populate grava no cache. Uma falha aqui não impede a resposta.
func (s *Service) populate(ctx context.Context, level, accountID string, upsert func() error) {
	if err := upsert(); err != nil {
		metrics.RecordCacheWriteFailure(level)
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"level":      level,
		}).Error("insights: falha ao gravar no cache")
	}
}

// checkCache trata erro de leitura como miss
func checkCache[T any](
	ctx context.Context,
	level, accountID string,
	period domain.Period,
	lookup func() (T, error),
	found func(T) bool,
) (T, bool) {
	var zero T

	cached, err := lookup()
	if err != nil {
		metrics.RecordCacheLookup(level, metrics.OutcomeError)
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"level":      level,
			"period":     period.String(),
		}).Warn("insights: erro ao ler o cache, buscando na API")
		return zero, false
	}

	if !found(cached) {
		metrics.RecordCacheLookup(level, metrics.OutcomeMiss)
		return zero, false
	}

	metrics.RecordCacheLookup(level, metrics.OutcomeHit)
	log.ForContext(ctx).WithFields(log.Fields{
		"account_id": accountID,
		"level":      level,
		"period":     period.String(),
	}).Debug("insights: cache hit")

	return cached, true
}

// checkFetchAll considera hit quando a conta já foi carregada hoje, mesmo que o
// filtro por pai não encontre nada
func checkFetchAll[T any](
	ctx context.Context,
	level, accountID string,
	period domain.Period,
	exists func() (bool, error),
	lookup func() ([]T, error),
) ([]T, bool) {
	fresh, err := exists()
	if err == nil && fresh {
		return checkCache(ctx, level, accountID, period, lookup, func([]T) bool { return true })
	}

	if err != nil {
		metrics.RecordCacheLookup(level, metrics.OutcomeError)
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"account_id": accountID,
			"level":      level,
		}).Warn("insights: erro ao verificar o cache, buscando na API")
		return nil, false
	}

	metrics.RecordCacheLookup(level, metrics.OutcomeMiss)

	return nil, false
}

func notEmpty[T any](rows []T) bool {
	return len(rows) > 0
}

func sortByCostPerResult(rows []*domain.AdRanking) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CostPerResult != rows[j].CostPerResult {
			return rows[i].CostPerResult < rows[j].CostPerResult
		}
		return rows[i].MetaAdID < rows[j].MetaAdID
	})
}

func limitRanking(rows []*domain.AdRanking, limit int) []*domain.AdRanking {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}

	return rows
}

func emptyAccountSummary(accountID string, period domain.Period) *domain.AccountSummary {
	return &domain.AccountSummary{
		AccountID: accountID,
		DateFrom:  period.From,
		DateTo:    period.To,
	}
}

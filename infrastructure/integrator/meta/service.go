package meta

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

var (
	accountFields  = []string{"spend", "impressions", "reach", "frequency", "clicks", "cpm", "ctr", "actions", "cost_per_action_type"}
	campaignFields = []string{"campaign_id", "campaign_name", "spend", "impressions", "reach", "frequency", "clicks", "cpm", "ctr", "actions", "cost_per_action_type"}
	adSetFields    = []string{"adset_id", "adset_name", "campaign_id", "spend", "reach", "impressions", "frequency", "ctr", "cpm", "actions"}
	adFields       = []string{"ad_id", "ad_name", "adset_id", "adset_name", "campaign_id", "campaign_name", "spend", "reach", "impressions", "frequency", "ctr", "cpm", "actions"}
	rankingFields  = []string{"ad_id", "ad_name", "spend", "impressions", "reach", "ctr", "actions"}
	trendFields    = []string{"spend", "actions", "date_start"}
	breakdownField = []string{"spend", "actions"}
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) limit() int {
	if s.cfg == nil || s.cfg.Meta.InsightsLimit <= 0 {
		return 200
	}

	return s.cfg.Meta.InsightsLimit
}

// FetchAccountAggregate devolve nil quando a Meta não tem linha para o período
func (s *MetaIntegrator) FetchAccountAggregate(ctx context.Context, accountRef string, period domain.Period) (*domain.AccountSummary, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	rows, err := s.Client.GetInsights(ctx, "account insights", accountRef, &metaclient.InsightParams{
		Fields: accountFields,
		Level:  "account",
		Period: period,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	return parseAccountInsight(period, &rows[0]), nil
}

func (s *MetaIntegrator) FetchCampaignLevel(ctx context.Context, accountRef string, period domain.Period) ([]*domain.CampaignSummary, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	rows, err := s.Client.GetInsights(ctx, "campaign level", accountRef, &metaclient.InsightParams{
		Fields:  campaignFields,
		Level:   "campaign",
		Period:  period,
		Filters: []metaclient.Filter{metaclient.SpendFilter},
		Limit:   s.limit(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Error("insights: failed to get campaign insights from API")
		return nil, err
	}

	campaigns := make([]*domain.CampaignSummary, 0, len(rows))
	for i := range rows {
		campaigns = append(campaigns, parseCampaignInsight(period, &rows[i]))
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].Spend > campaigns[j].Spend
	})

	logrus.WithFields(logrus.Fields{
		"account_id": accountRef,
		"campaigns":  len(campaigns),
	}).Debug("insights: successfully retrieved campaign metrics")

	return campaigns, nil
}

func (s *MetaIntegrator) FetchCampaignBudgets(ctx context.Context, accountRef string) ([]*domain.CampaignBudget, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	items, err := s.Client.GetCampaigns(ctx, accountRef)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Error("insights: failed to list campaigns")
		return nil, err
	}

	budgets := make([]*domain.CampaignBudget, 0, len(items))
	for i := range items {
		budgets = append(budgets, parseCampaignBudget(&items[i]))
	}

	return budgets, nil
}

// FetchAdSetLevel faz a listagem e os insights em paralelo e junta pelo id do conjunto.
// Conjuntos sem gasto no período aparecem com métricas zeradas.
func (s *MetaIntegrator) FetchAdSetLevel(ctx context.Context, accountRef string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	filters := []metaclient.Filter{metaclient.SpendFilter}
	if campaignID != "" {
		filters = append(filters, metaclient.Filter{Field: "campaign.id", Operator: metaclient.OperatorEqual, Value: campaignID})
	}

	var (
		wg         sync.WaitGroup
		items      []metadomain.AdSetListItem
		rows       []metadomain.InsightRow
		listErr    error
		insightErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		items, listErr = s.Client.GetAdSets(ctx, accountRef, campaignID)
	}()
	go func() {
		defer wg.Done()
		rows, insightErr = s.Client.GetInsights(ctx, "adsets insights", accountRef, &metaclient.InsightParams{
			Fields:  adSetFields,
			Level:   "adset",
			Period:  period,
			Filters: filters,
			Limit:   s.limit(),
		})
	}()
	wg.Wait()

	for _, err := range []error{listErr, insightErr} {
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id":  accountRef,
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("insights: failed to get adsets from API")
			return nil, err
		}
	}

	insightsByID := make(map[string]*metadomain.InsightRow, len(rows))
	for i := range rows {
		insightsByID[rows[i].AdSetID] = &rows[i]
	}

	adSets := make([]*domain.AdSetSummary, 0, len(items))
	for i := range items {
		adSets = append(adSets, parseAdSetInsight(period, &items[i], insightsByID[items[i].ID]))
	}

	return adSets, nil
}

// FetchAdLevel busca os insights por anúncio e depois o status em lote.
// Se o status falhar, todos ficam como ACTIVE.
func (s *MetaIntegrator) FetchAdLevel(ctx context.Context, accountRef string, period domain.Period, adSetID string) ([]*domain.AdSummary, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	filters := []metaclient.Filter{metaclient.SpendFilter}
	if adSetID != "" {
		filters = append(filters, metaclient.Filter{Field: "adset.id", Operator: metaclient.OperatorEqual, Value: adSetID})
	}

	rows, err := s.Client.GetInsights(ctx, "ad level insights", accountRef, &metaclient.InsightParams{
		Fields:  adFields,
		Level:   "ad",
		Period:  period,
		Filters: filters,
		Limit:   s.limit(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"adset_id":   adSetID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad insights from API")
		return nil, err
	}

	if len(rows) == 0 {
		return []*domain.AdSummary{}, nil
	}

	statuses, err := s.Client.GetAdStatuses(ctx, adIDs(rows))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Warn("insights: status dos anúncios indisponível, usando ACTIVE")
		statuses = nil
	}

	ads := make([]*domain.AdSummary, 0, len(rows))
	for i := range rows {
		ad := parseAdInsight(period, &rows[i], statuses[rows[i].AdID].EffectiveStatus)
		if ad.Spend <= 0 {
			continue
		}
		ads = append(ads, ad)
	}

	return ads, nil
}

// FetchDailyTrend usa /{entityId}/insights para campanha, conjunto ou anúncio e
// level=account quando o alvo é a conta inteira
func (s *MetaIntegrator) FetchDailyTrend(ctx context.Context, target domain.TrendTarget, period domain.Period) ([]domain.TrendPoint, error) {
	objectID := target.EntityID
	params := &metaclient.InsightParams{
		Fields:        trendFields,
		Period:        period,
		TimeIncrement: 1,
	}

	operation := "entity daily insights"
	if objectID == "" {
		objectID = domain.MetaAccountRef(target.AccountRef)
		params.Level = "account"
		operation = "account daily"
	}

	rows, err := s.Client.GetInsights(ctx, operation, objectID, params)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": target.AccountRef,
			"entity_id":  target.EntityID,
			"error":      err.Error(),
		}).Error("insights: failed to get daily trend from API")
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, len(rows))
	for i := range rows {
		points = append(points, parseTrendPoint(&rows[i]))
	}

	return points, nil
}

// FetchTopAdsCandidates devolve apenas anúncios com pelo menos um resultado.
// A ordenação fica com quem consome (melhores ou piores).
func (s *MetaIntegrator) FetchTopAdsCandidates(ctx context.Context, accountRef string, period domain.Period) ([]*domain.AdRanking, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	rows, err := s.Client.GetInsights(ctx, "top ads insights", accountRef, &metaclient.InsightParams{
		Fields:  rankingFields,
		Level:   "ad",
		Period:  period,
		Filters: []metaclient.Filter{metaclient.SpendFilter},
		Limit:   s.limit(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Error("insights: failed to get top ads insights from API")
		return nil, err
	}

	if len(rows) == 0 {
		return []*domain.AdRanking{}, nil
	}

	thumbnails, err := s.Client.GetAdThumbnails(ctx, adIDs(rows))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"error":      err.Error(),
		}).Warn("insights: thumbnails indisponíveis, seguindo sem imagens")
		thumbnails = nil
	}

	candidates := make([]*domain.AdRanking, 0, len(rows))
	for i := range rows {
		imageURL := ""
		if node, ok := thumbnails[rows[i].AdID]; ok && node.Creative != nil {
			imageURL = node.Creative.ThumbnailURL
		}

		candidate := parseRankingRow(period, &rows[i], imageURL)
		if candidate.Results <= 0 {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

func (s *MetaIntegrator) FetchBreakdown(ctx context.Context, accountRef string, period domain.Period, dimension domain.BreakdownDimension) ([]domain.BreakdownRow, error) {
	accountRef = domain.MetaAccountRef(accountRef)

	breakdowns, ok := breakdownDimensions[dimension]
	if !ok {
		return nil, domain.ErrInvalidBreakdownDimension
	}

	rows, err := s.Client.GetInsights(ctx, "breakdown/"+string(dimension), accountRef, &metaclient.InsightParams{
		Fields:     breakdownField,
		Level:      "account",
		Period:     period,
		Filters:    []metaclient.Filter{metaclient.SpendFilter},
		Breakdowns: breakdowns,
		Limit:      s.limit(),
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountRef,
			"dimension":  dimension,
			"error":      err.Error(),
		}).Error("insights: failed to get breakdown from API")
		return nil, err
	}

	parsed := make([]domain.BreakdownRow, 0, len(rows))
	for i := range rows {
		row := parseBreakdownRow(dimension, &rows[i])
		if row.Spend <= 0 {
			continue
		}
		parsed = append(parsed, row)
	}

	return domain.GroupBreakdownByLabel(parsed), nil
}

// FetchAccountsForTenant lista todas as contas visíveis para o token configurado
func (s *MetaIntegrator) FetchAccountsForTenant(ctx context.Context) ([]domain.AccountInfo, error) {
	accounts, err := s.Client.GetAdAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list ad accounts from API")
		return nil, err
	}

	infos := make([]domain.AccountInfo, 0, len(accounts))
	for i := range accounts {
		infos = append(infos, parseAccountInfo(&accounts[i]))
	}

	return infos, nil
}

func adIDs(rows []metadomain.InsightRow) []string {
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.AdID != "" {
			ids = append(ids, row.AdID)
		}
	}

	return ids
}

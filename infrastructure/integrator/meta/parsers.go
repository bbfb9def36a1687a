package meta

import (
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

const (
	defaultCampaignName = "Campanha sem nome"
	defaultAdName       = "Anúncio sem nome"
	defaultAdStatus     = "ACTIVE"
)

func toActions(actions []metadomain.Action) []domain.Action {
	if len(actions) == 0 {
		return nil
	}

	converted := make([]domain.Action, 0, len(actions))
	for _, action := range actions {
		converted = append(converted, domain.Action{ActionType: action.ActionType, Value: action.Value})
	}

	return converted
}

func parseMetrics(row *metadomain.InsightRow) (domain.Metrics, []domain.Action) {
	actions := toActions(row.Actions)
	spend := utils.ParseFloat(row.Spend)

	metrics := domain.Metrics{
		Spend:       spend,
		Impressions: utils.ParseInt(row.Impressions),
		Reach:       utils.ParseInt(row.Reach),
		Frequency:   utils.ParseFloat(row.Frequency),
		CTR:         utils.ParseFloat(row.CTR),
		CPM:         utils.ParseFloat(row.CPM),
		Clicks:      utils.ParseInt(row.Clicks),
	}
	metrics.ApplyResults(domain.SummarizeResults(actions, spend))

	return metrics, actions
}

func parseAccountInsight(period domain.Period, row *metadomain.InsightRow) *domain.AccountSummary {
	metrics, actions := parseMetrics(row)

	return &domain.AccountSummary{
		DateFrom:   period.From,
		DateTo:     period.To,
		Metrics:    metrics,
		RawActions: actions,
	}
}

func parseCampaignInsight(period domain.Period, row *metadomain.InsightRow) *domain.CampaignSummary {
	metrics, actions := parseMetrics(row)

	return &domain.CampaignSummary{
		MetaCampaignID: row.CampaignID,
		Name:           withDefault(row.CampaignName, defaultCampaignName),
		DateFrom:       period.From,
		DateTo:         period.To,
		Metrics:        metrics,
		RawActions:     actions,
	}
}

// parseAdSetInsight une a linha da listagem (status, orçamento) com os insights, que podem não existir
func parseAdSetInsight(period domain.Period, item *metadomain.AdSetListItem, row *metadomain.InsightRow) *domain.AdSetSummary {
	adSet := &domain.AdSetSummary{
		MetaAdSetID:    item.ID,
		Name:           item.Name,
		Status:         item.EffectiveStatus,
		MetaCampaignID: item.CampaignID,
		DailyBudget:    parseBudget(item.DailyBudget),
		LifetimeBudget: parseBudget(item.LifetimeBudget),
		DateFrom:       period.From,
		DateTo:         period.To,
	}

	if item.Campaign != nil {
		adSet.CampaignName = item.Campaign.Name
		if adSet.MetaCampaignID == "" {
			adSet.MetaCampaignID = item.Campaign.ID
		}
	}

	if row != nil {
		adSet.Metrics, _ = parseMetrics(row)
	}

	return adSet
}

func parseAdInsight(period domain.Period, row *metadomain.InsightRow, status string) *domain.AdSummary {
	metrics, _ := parseMetrics(row)

	return &domain.AdSummary{
		MetaAdID:       row.AdID,
		Name:           withDefault(row.AdName, defaultAdName),
		Status:         withDefault(status, defaultAdStatus),
		MetaAdSetID:    row.AdSetID,
		AdSetName:      row.AdSetName,
		MetaCampaignID: row.CampaignID,
		CampaignName:   row.CampaignName,
		DateFrom:       period.From,
		DateTo:         period.To,
		Metrics:        metrics,
	}
}

func parseRankingRow(period domain.Period, row *metadomain.InsightRow, imageURL string) *domain.AdRanking {
	spend := utils.ParseFloat(row.Spend)
	results := domain.SummarizeResults(toActions(row.Actions), spend)

	ranking := &domain.AdRanking{
		MetaAdID:      row.AdID,
		Name:          withDefault(row.AdName, defaultAdName),
		Spend:         spend,
		Impressions:   utils.ParseInt(row.Impressions),
		Reach:         utils.ParseInt(row.Reach),
		CTR:           utils.ParseFloat(row.CTR),
		Results:       results.Results,
		CostPerResult: results.CostPerResult,
		DateFrom:      period.From,
		DateTo:        period.To,
	}

	if imageURL != "" {
		ranking.ImageURL = &imageURL
	}

	return ranking
}

func parseTrendPoint(row *metadomain.InsightRow) domain.TrendPoint {
	spend := utils.ParseFloat(row.Spend)
	results := domain.SummarizeResults(toActions(row.Actions), spend)

	return domain.TrendPoint{
		Date:    row.DateStart,
		Spend:   spend,
		Results: results.Results,
		CPL:     results.CostPerResult,
	}
}

func parseBreakdownRow(dimension domain.BreakdownDimension, row *metadomain.InsightRow) domain.BreakdownRow {
	spend := utils.ParseFloat(row.Spend)
	results := domain.SummarizeResults(toActions(row.Actions), spend)

	return domain.BreakdownRow{
		Label:   breakdownLabel(dimension, row),
		Spend:   spend,
		Results: results.Results,
		CPL:     results.CostPerResult,
	}
}

func parseCampaignBudget(item *metadomain.CampaignListItem) *domain.CampaignBudget {
	return &domain.CampaignBudget{
		MetaCampaignID: item.ID,
		Name:           item.Name,
		Status:         item.EffectiveStatus,
		DailyBudget:    parseBudget(item.DailyBudget),
		LifetimeBudget: parseBudget(item.LifetimeBudget),
	}
}

func parseAccountInfo(account *metadomain.AdAccount) domain.AccountInfo {
	return domain.AccountInfo{
		MetaAccountID: domain.MetaAccountRef(account.ID),
		Name:          account.Name,
		StatusCode:    account.AccountStatus,
		Currency:      account.Currency,
		TimezoneName:  account.TimezoneName,
	}
}

// parseBudget converte o orçamento de centavos para reais. Ausente vira nil.
func parseBudget(cents string) *float64 {
	if cents == "" {
		return nil
	}

	value := float64(utils.ParseInt(cents)) / 100
	return &value
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

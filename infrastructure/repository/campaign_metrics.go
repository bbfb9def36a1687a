package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var campaignMetricsTable = cacheTable{
	name:       "campaign_metrics_cache",
	keyColumns: []string{"meta_ad_account_id", "meta_campaign_id", "date_from", "date_to"},
	valueColumns: columns(
		[]string{"campaign_name", "campaign_status", "daily_budget", "lifetime_budget"},
		metricColumns,
		[]string{"raw_actions"},
	),
}

type CampaignMetricsRepository interface {
	LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.CampaignSummary, error)
	UpsertMany(ctx context.Context, rows []*domain.CampaignSummary) error
	ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error)
}

type campaignMetricsRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewCampaignMetricsRepository(conn postgres.Queryer, clock Clock) CampaignMetricsRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &campaignMetricsRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *campaignMetricsRepository) LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.CampaignSummary, error) {
	query, args, err := campaignMetricsTable.buildSelect(
		campaignMetricsTable.periodWhere(accountID, period),
		freshOnly,
		r.clock,
		"spend DESC", "meta_campaign_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanCampaignSummary)
}

func (r *campaignMetricsRepository) UpsertMany(ctx context.Context, rows []*domain.CampaignSummary) error {
	values, err := campaignMetricsValues(rows, r.clock())
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, campaignMetricsTable, values)
}

func (r *campaignMetricsRepository) ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error) {
	return existsFresh(ctx, r.conn, campaignMetricsTable, campaignMetricsTable.periodWhere(accountID, period), r.clock)
}

func campaignMetricsValues(rows []*domain.CampaignSummary, syncedAt time.Time) ([][]any, error) {
	rows = dedupeByKey(rows, func(row *domain.CampaignSummary) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo, row.MetaCampaignID)
	})

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		actions := row.RawActions
		if actions == nil {
			actions = []domain.Action{}
		}

		rawActions, err := marshalJSON(actions)
		if err != nil {
			return nil, err
		}

		row.SyncedAt = timePointer(syncedAt)

		value := []any{
			row.AccountID,
			row.MetaCampaignID,
			utils.FormatDate(row.DateFrom),
			utils.FormatDate(row.DateTo),
			row.Name,
			row.Status,
			nullableFloat(row.DailyBudget),
			nullableFloat(row.LifetimeBudget),
		}
		value = append(value, metricValues(row.Metrics)...)
		value = append(value, rawActions, syncedAt)
		values = append(values, value)
	}

	return values, nil
}

func scanCampaignSummary(row scanner) (*domain.CampaignSummary, error) {
	campaign := &domain.CampaignSummary{}

	var (
		dailyBudget    sql.NullFloat64
		lifetimeBudget sql.NullFloat64
		rawActions     []byte
		syncedAt       time.Time
	)

	targets := []any{
		&campaign.AccountID,
		&campaign.MetaCampaignID,
		&campaign.DateFrom,
		&campaign.DateTo,
		&campaign.Name,
		&campaign.Status,
		&dailyBudget,
		&lifetimeBudget,
	}
	targets = append(targets, metricTargets(&campaign.Metrics)...)
	targets = append(targets, &rawActions, &syncedAt)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	if len(rawActions) > 0 {
		if err := json.Unmarshal(rawActions, &campaign.RawActions); err != nil {
			return nil, fmt.Errorf("erro ao ler raw_actions: %w", err)
		}
	}

	campaign.DailyBudget = floatPointer(dailyBudget)
	campaign.LifetimeBudget = floatPointer(lifetimeBudget)
	campaign.DateFrom, campaign.DateTo = localDate(campaign.DateFrom), localDate(campaign.DateTo)
	campaign.SyncedAt = timePointer(syncedAt)

	return campaign, nil
}

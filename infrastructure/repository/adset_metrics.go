package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var adSetMetricsTable = cacheTable{
	name:       "adset_metrics_cache",
	keyColumns: []string{"meta_ad_account_id", "meta_adset_id", "date_from", "date_to"},
	valueColumns: columns(
		[]string{"adset_name", "adset_status", "meta_campaign_id", "campaign_name", "daily_budget", "lifetime_budget"},
		metricColumns,
	),
}

type AdSetMetricsRepository interface {
	LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdSetSummary, error)
	// LookupByCampaign lê apenas linhas frescas. campaignID vazio devolve todos os conjuntos da conta.
	LookupByCampaign(ctx context.Context, accountID string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error)
	UpsertMany(ctx context.Context, rows []*domain.AdSetSummary) error
	ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error)
}

type adSetMetricsRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewAdSetMetricsRepository(conn postgres.Queryer, clock Clock) AdSetMetricsRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &adSetMetricsRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *adSetMetricsRepository) LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdSetSummary, error) {
	return r.lookup(ctx, adSetMetricsTable.periodWhere(accountID, period), freshOnly)
}

func (r *adSetMetricsRepository) LookupByCampaign(ctx context.Context, accountID string, period domain.Period, campaignID string) ([]*domain.AdSetSummary, error) {
	return r.lookup(ctx, adSetCampaignWhere(accountID, period, campaignID), true)
}

func (r *adSetMetricsRepository) lookup(ctx context.Context, where squirrel.Eq, freshOnly bool) ([]*domain.AdSetSummary, error) {
	query, args, err := adSetMetricsTable.buildSelect(where, freshOnly, r.clock, "spend DESC", "meta_adset_id ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanAdSetSummary)
}

func (r *adSetMetricsRepository) UpsertMany(ctx context.Context, rows []*domain.AdSetSummary) error {
	values := adSetMetricsValues(rows, r.clock())
	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, adSetMetricsTable, values)
}

func (r *adSetMetricsRepository) ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error) {
	return existsFresh(ctx, r.conn, adSetMetricsTable, adSetMetricsTable.periodWhere(accountID, period), r.clock)
}

func adSetCampaignWhere(accountID string, period domain.Period, campaignID string) squirrel.Eq {
	where := adSetMetricsTable.periodWhere(accountID, period)
	if campaignID != "" {
		where["meta_campaign_id"] = campaignID
	}

	return where
}

func adSetMetricsValues(rows []*domain.AdSetSummary, syncedAt time.Time) [][]any {
	rows = dedupeByKey(rows, func(row *domain.AdSetSummary) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo, row.MetaAdSetID)
	})

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		row.SyncedAt = timePointer(syncedAt)

		value := []any{
			row.AccountID,
			row.MetaAdSetID,
			utils.FormatDate(row.DateFrom),
			utils.FormatDate(row.DateTo),
			row.Name,
			row.Status,
			row.MetaCampaignID,
			row.CampaignName,
			nullableFloat(row.DailyBudget),
			nullableFloat(row.LifetimeBudget),
		}
		value = append(value, metricValues(row.Metrics)...)
		value = append(value, syncedAt)
		values = append(values, value)
	}

	return values
}

func scanAdSetSummary(row scanner) (*domain.AdSetSummary, error) {
	adSet := &domain.AdSetSummary{}

	var (
		dailyBudget    sql.NullFloat64
		lifetimeBudget sql.NullFloat64
		syncedAt       time.Time
	)

	targets := []any{
		&adSet.AccountID,
		&adSet.MetaAdSetID,
		&adSet.DateFrom,
		&adSet.DateTo,
		&adSet.Name,
		&adSet.Status,
		&adSet.MetaCampaignID,
		&adSet.CampaignName,
		&dailyBudget,
		&lifetimeBudget,
	}
	targets = append(targets, metricTargets(&adSet.Metrics)...)
	targets = append(targets, &syncedAt)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	adSet.DailyBudget = floatPointer(dailyBudget)
	adSet.LifetimeBudget = floatPointer(lifetimeBudget)
	adSet.DateFrom, adSet.DateTo = localDate(adSet.DateFrom), localDate(adSet.DateTo)
	adSet.SyncedAt = timePointer(syncedAt)

	return adSet, nil
}

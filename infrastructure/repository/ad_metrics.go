package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var adMetricsTable = cacheTable{
	name:       "ad_metrics_cache",
	keyColumns: []string{"meta_ad_account_id", "meta_ad_id", "date_from", "date_to"},
	valueColumns: columns(
		[]string{"ad_name", "ad_status", "meta_adset_id", "adset_name", "meta_campaign_id", "campaign_name"},
		metricColumns,
	),
}

type AdMetricsRepository interface {
	LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdSummary, error)
	// LookupByAdSet lê apenas linhas frescas. adSetID vazio devolve todos os anúncios da conta.
	LookupByAdSet(ctx context.Context, accountID string, period domain.Period, adSetID string) ([]*domain.AdSummary, error)
	UpsertMany(ctx context.Context, rows []*domain.AdSummary) error
	ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error)
}

type adMetricsRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewAdMetricsRepository(conn postgres.Queryer, clock Clock) AdMetricsRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &adMetricsRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *adMetricsRepository) LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdSummary, error) {
	return r.lookup(ctx, adMetricsTable.periodWhere(accountID, period), freshOnly)
}

func (r *adMetricsRepository) LookupByAdSet(ctx context.Context, accountID string, period domain.Period, adSetID string) ([]*domain.AdSummary, error) {
	return r.lookup(ctx, adAdSetWhere(accountID, period, adSetID), true)
}

func (r *adMetricsRepository) lookup(ctx context.Context, where squirrel.Eq, freshOnly bool) ([]*domain.AdSummary, error) {
	query, args, err := adMetricsTable.buildSelect(where, freshOnly, r.clock, "spend DESC", "meta_ad_id ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanAdSummary)
}

func (r *adMetricsRepository) UpsertMany(ctx context.Context, rows []*domain.AdSummary) error {
	values := adMetricsValues(rows, r.clock())
	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, adMetricsTable, values)
}

func (r *adMetricsRepository) ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error) {
	return existsFresh(ctx, r.conn, adMetricsTable, adMetricsTable.periodWhere(accountID, period), r.clock)
}

func adAdSetWhere(accountID string, period domain.Period, adSetID string) squirrel.Eq {
	where := adMetricsTable.periodWhere(accountID, period)
	if adSetID != "" {
		where["meta_adset_id"] = adSetID
	}

	return where
}

func adMetricsValues(rows []*domain.AdSummary, syncedAt time.Time) [][]any {
	rows = dedupeByKey(rows, func(row *domain.AdSummary) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo, row.MetaAdID)
	})

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		row.SyncedAt = timePointer(syncedAt)

		value := []any{
			row.AccountID,
			row.MetaAdID,
			utils.FormatDate(row.DateFrom),
			utils.FormatDate(row.DateTo),
			row.Name,
			row.Status,
			row.MetaAdSetID,
			row.AdSetName,
			row.MetaCampaignID,
			row.CampaignName,
		}
		value = append(value, metricValues(row.Metrics)...)
		value = append(value, syncedAt)
		values = append(values, value)
	}

	return values
}

func scanAdSummary(row scanner) (*domain.AdSummary, error) {
	ad := &domain.AdSummary{}

	var syncedAt time.Time

	targets := []any{
		&ad.AccountID,
		&ad.MetaAdID,
		&ad.DateFrom,
		&ad.DateTo,
		&ad.Name,
		&ad.Status,
		&ad.MetaAdSetID,
		&ad.AdSetName,
		&ad.MetaCampaignID,
		&ad.CampaignName,
	}
	targets = append(targets, metricTargets(&ad.Metrics)...)
	targets = append(targets, &syncedAt)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	ad.DateFrom, ad.DateTo = localDate(ad.DateFrom), localDate(ad.DateTo)
	ad.SyncedAt = timePointer(syncedAt)

	return ad, nil
}

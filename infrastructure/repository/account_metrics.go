package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var accountMetricsTable = cacheTable{
	name:         "account_metrics_cache",
	keyColumns:   []string{"meta_ad_account_id", "date_from", "date_to"},
	valueColumns: columns(metricColumns, []string{"raw_actions"}),
}

type AccountMetricsRepository interface {
	Lookup(ctx context.Context, accountID string, period domain.Period, freshOnly bool) (*domain.AccountSummary, error)
	UpsertMany(ctx context.Context, rows []*domain.AccountSummary) error
	ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error)
}

type accountMetricsRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewAccountMetricsRepository(conn postgres.Queryer, clock Clock) AccountMetricsRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &accountMetricsRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *accountMetricsRepository) Lookup(ctx context.Context, accountID string, period domain.Period, freshOnly bool) (*domain.AccountSummary, error) {
	query, args, err := accountMetricsTable.buildSelect(accountMetricsTable.periodWhere(accountID, period), freshOnly, r.clock)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := scanAccountSummary(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return summary, nil
}

func (r *accountMetricsRepository) UpsertMany(ctx context.Context, rows []*domain.AccountSummary) error {
	values, err := accountMetricsValues(rows, r.clock())
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, accountMetricsTable, values)
}

func (r *accountMetricsRepository) ExistsFreshToday(ctx context.Context, accountID string, period domain.Period) (bool, error) {
	return existsFresh(ctx, r.conn, accountMetricsTable, accountMetricsTable.periodWhere(accountID, period), r.clock)
}

// accountMetricsValues remove chaves repetidas, carimba o synced_at e monta os valores na ordem das colunas
func accountMetricsValues(rows []*domain.AccountSummary, syncedAt time.Time) ([][]any, error) {
	rows = dedupeByKey(rows, func(row *domain.AccountSummary) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo)
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

		value := []any{row.AccountID, utils.FormatDate(row.DateFrom), utils.FormatDate(row.DateTo)}
		value = append(value, metricValues(row.Metrics)...)
		value = append(value, rawActions, syncedAt)
		values = append(values, value)
	}

	return values, nil
}

func scanAccountSummary(row scanner) (*domain.AccountSummary, error) {
	summary := &domain.AccountSummary{}

	var (
		rawActions []byte
		syncedAt   time.Time
	)

	targets := []any{&summary.AccountID, &summary.DateFrom, &summary.DateTo}
	targets = append(targets, metricTargets(&summary.Metrics)...)
	targets = append(targets, &rawActions, &syncedAt)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	if len(rawActions) > 0 {
		if err := json.Unmarshal(rawActions, &summary.RawActions); err != nil {
			return nil, fmt.Errorf("erro ao ler raw_actions: %w", err)
		}
	}

	summary.DateFrom, summary.DateTo = localDate(summary.DateFrom), localDate(summary.DateTo)
	summary.SyncedAt = timePointer(syncedAt)

	return summary, nil
}

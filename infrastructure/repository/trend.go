package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// entity_id vazio representa a série da conta inteira
var trendTable = cacheTable{
	name:         "trend_cache",
	keyColumns:   []string{"meta_ad_account_id", "entity_id", "date_from", "date_to"},
	valueColumns: []string{"points"},
}

type TrendRepository interface {
	Lookup(ctx context.Context, accountID, entityID string, period domain.Period, freshOnly bool) (*domain.TrendSeries, error)
	UpsertMany(ctx context.Context, rows []*domain.TrendSeries) error
}

type trendRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewTrendRepository(conn postgres.Queryer, clock Clock) TrendRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &trendRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *trendRepository) Lookup(ctx context.Context, accountID, entityID string, period domain.Period, freshOnly bool) (*domain.TrendSeries, error) {
	query, args, err := trendTable.buildSelect(trendWhere(accountID, entityID, period), freshOnly, r.clock)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	series, err := scanTrendSeries(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return series, nil
}

func (r *trendRepository) UpsertMany(ctx context.Context, rows []*domain.TrendSeries) error {
	values, err := trendValues(rows, r.clock())
	if err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, trendTable, values)
}

func trendWhere(accountID, entityID string, period domain.Period) squirrel.Eq {
	where := trendTable.periodWhere(accountID, period)
	where["entity_id"] = entityID

	return where
}

func trendValues(rows []*domain.TrendSeries, syncedAt time.Time) ([][]any, error) {
	rows = dedupeByKey(rows, func(row *domain.TrendSeries) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo, row.EntityID)
	})

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		points := row.Points
		if points == nil {
			points = []domain.TrendPoint{}
		}

		data, err := marshalJSON(points)
		if err != nil {
			return nil, err
		}

		row.SyncedAt = timePointer(syncedAt)

		values = append(values, []any{
			row.AccountID,
			row.EntityID,
			utils.FormatDate(row.DateFrom),
			utils.FormatDate(row.DateTo),
			data,
			syncedAt,
		})
	}

	return values, nil
}

func scanTrendSeries(row scanner) (*domain.TrendSeries, error) {
	series := &domain.TrendSeries{}

	var (
		points   []byte
		syncedAt time.Time
	)

	if err := row.Scan(
		&series.AccountID,
		&series.EntityID,
		&series.DateFrom,
		&series.DateTo,
		&points,
		&syncedAt,
	); err != nil {
		return nil, err
	}

	series.Points = make([]domain.TrendPoint, 0)
	if len(points) > 0 {
		if err := json.Unmarshal(points, &series.Points); err != nil {
			return nil, fmt.Errorf("erro ao ler os pontos da série: %w", err)
		}
	}

	series.DateFrom, series.DateTo = localDate(series.DateFrom), localDate(series.DateTo)
	series.SyncedAt = timePointer(syncedAt)

	return series, nil
}

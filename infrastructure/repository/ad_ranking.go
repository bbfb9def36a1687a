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

// A mesma tabela atende os melhores e os piores anúncios, só muda a direção da ordenação
var adRankingTable = cacheTable{
	name:       "ad_ranking_cache",
	keyColumns: []string{"meta_ad_account_id", "meta_ad_id", "date_from", "date_to"},
	valueColumns: []string{
		"ad_name",
		"image_url",
		"spend",
		"impressions",
		"reach",
		"ctr",
		"results",
		"cost_per_result",
	},
}

type AdRankingRepository interface {
	// LookupMany devolve os candidatos ordenados por custo por resultado crescente
	LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdRanking, error)
	UpsertMany(ctx context.Context, rows []*domain.AdRanking) error
}

type adRankingRepository struct {
	conn  postgres.Queryer
	clock Clock
}

func NewAdRankingRepository(conn postgres.Queryer, clock Clock) AdRankingRepository {
	if clock == nil {
		clock = DefaultClock
	}

	return &adRankingRepository{
		conn:  conn,
		clock: clock,
	}
}

func (r *adRankingRepository) LookupMany(ctx context.Context, accountID string, period domain.Period, freshOnly bool) ([]*domain.AdRanking, error) {
	query, args, err := adRankingTable.buildSelect(
		adRankingTable.periodWhere(accountID, period),
		freshOnly,
		r.clock,
		"cost_per_result ASC", "meta_ad_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanAdRanking)
}

func (r *adRankingRepository) UpsertMany(ctx context.Context, rows []*domain.AdRanking) error {
	values := adRankingValues(rows, r.clock())
	if len(values) == 0 {
		return nil
	}

	return execUpsert(ctx, r.conn, adRankingTable, values)
}

func adRankingValues(rows []*domain.AdRanking, syncedAt time.Time) [][]any {
	rows = dedupeByKey(rows, func(row *domain.AdRanking) string {
		return periodKey(row.AccountID, row.DateFrom, row.DateTo, row.MetaAdID)
	})

	values := make([][]any, 0, len(rows))
	for _, row := range rows {
		row.SyncedAt = timePointer(syncedAt)

		var imageURL sql.NullString
		if row.ImageURL != nil {
			imageURL = sql.NullString{String: *row.ImageURL, Valid: true}
		}

		values = append(values, []any{
			row.AccountID,
			row.MetaAdID,
			utils.FormatDate(row.DateFrom),
			utils.FormatDate(row.DateTo),
			row.Name,
			imageURL,
			row.Spend,
			row.Impressions,
			row.Reach,
			row.CTR,
			row.Results,
			row.CostPerResult,
			syncedAt,
		})
	}

	return values
}

func scanAdRanking(row scanner) (*domain.AdRanking, error) {
	ranking := &domain.AdRanking{}

	var (
		imageURL sql.NullString
		syncedAt time.Time
	)

	if err := row.Scan(
		&ranking.AccountID,
		&ranking.MetaAdID,
		&ranking.DateFrom,
		&ranking.DateTo,
		&ranking.Name,
		&imageURL,
		&ranking.Spend,
		&ranking.Impressions,
		&ranking.Reach,
		&ranking.CTR,
		&ranking.Results,
		&ranking.CostPerResult,
		&syncedAt,
	); err != nil {
		return nil, err
	}

	if imageURL.Valid {
		ranking.ImageURL = &imageURL.String
	}
	ranking.DateFrom, ranking.DateTo = localDate(ranking.DateFrom), localDate(ranking.DateTo)
	ranking.SyncedAt = timePointer(syncedAt)

	return ranking, nil
}

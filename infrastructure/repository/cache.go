package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Clock permite controlar o "agora" usado no synced_at e no corte de frescor
type Clock func() time.Time

var DefaultClock Clock = time.Now

// FreshCutoff é a meia-noite de hoje no fuso do servidor.
// Uma linha é fresca quando synced_at >= FreshCutoff.
func FreshCutoff(clock Clock) time.Time {
	return utils.StartOfDay(clock().In(time.Local))
}

const syncedAtColumn = "synced_at"

var metricColumns = []string{
	"spend",
	"results",
	"cost_per_result",
	"impressions",
	"reach",
	"frequency",
	"ctr",
	"cpm",
	"clicks",
	"leads",
	"messages",
	"purchases",
}

func metricValues(m domain.Metrics) []any {
	return []any{
		m.Spend,
		m.Results,
		m.CostPerResult,
		m.Impressions,
		m.Reach,
		m.Frequency,
		m.CTR,
		m.CPM,
		m.Clicks,
		m.Leads,
		m.Messages,
		m.Purchases,
	}
}

func metricTargets(m *domain.Metrics) []any {
	return []any{
		&m.Spend,
		&m.Results,
		&m.CostPerResult,
		&m.Impressions,
		&m.Reach,
		&m.Frequency,
		&m.CTR,
		&m.CPM,
		&m.Clicks,
		&m.Leads,
		&m.Messages,
		&m.Purchases,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

// cacheTable descreve uma tabela de cache: chave composta e colunas atualizadas no conflito
type cacheTable struct {
	name         string
	keyColumns   []string
	valueColumns []string
}

func (t cacheTable) insertColumns() []string {
	columns := make([]string, 0, len(t.keyColumns)+len(t.valueColumns)+1)
	columns = append(columns, t.keyColumns...)
	columns = append(columns, t.valueColumns...)
	return append(columns, syncedAtColumn)
}

func (t cacheTable) selectColumns() string {
	return strings.Join(t.insertColumns(), ", ")
}

// onConflict atualiza todas as colunas de valor e o synced_at, então a última escrita vence
func (t cacheTable) onConflict() string {
	updates := make([]string, 0, len(t.valueColumns)+1)
	for _, column := range append(append([]string{}, t.valueColumns...), syncedAtColumn) {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", column, column))
	}

	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(t.keyColumns, ", "), strings.Join(updates, ", "))
}

// buildUpsert recebe uma linha de valores por registro, já na ordem de insertColumns
func (t cacheTable) buildUpsert(rows [][]any) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, errors.New("no rows to upsert")
	}

	query := squirrel.
		Insert(t.name).
		Columns(t.insertColumns()...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(row...)
	}

	return query.Suffix(t.onConflict()).ToSql()
}

func (t cacheTable) periodWhere(accountID string, period domain.Period) squirrel.Eq {
	return squirrel.Eq{
		"meta_ad_account_id": accountID,
		"date_from":          period.Since(),
		"date_to":            period.Until(),
	}
}

func (t cacheTable) buildSelect(where squirrel.Sqlizer, freshOnly bool, clock Clock, orderBy ...string) (string, []any, error) {
	query := squirrel.
		Select(t.selectColumns()).
		From(t.name).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	if freshOnly {
		query = query.Where(squirrel.GtOrEq{syncedAtColumn: FreshCutoff(clock)})
	}

	if len(orderBy) > 0 {
		query = query.OrderBy(orderBy...)
	}

	return query.ToSql()
}

func (t cacheTable) buildExistsFresh(where squirrel.Sqlizer, clock Clock) (string, []any, error) {
	return squirrel.
		Select("1").
		From(t.name).
		Where(where).
		Where(squirrel.GtOrEq{syncedAtColumn: FreshCutoff(clock)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func existsFresh(ctx context.Context, conn postgres.Queryer, table cacheTable, where squirrel.Sqlizer, clock Clock) (bool, error) {
	query, args, err := table.buildExistsFresh(where, clock)
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	if err := conn.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, wrapDBError(err)
	}

	return true, nil
}

func execUpsert(ctx context.Context, conn postgres.Queryer, table cacheTable, rows [][]any) error {
	query, args, err := table.buildUpsert(rows)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// dedupeByKey colapsa chaves repetidas no mesmo lote mantendo o último valor.
// O Postgres rejeita um INSERT ... ON CONFLICT que toque a mesma chave duas vezes.
func dedupeByKey[T any](rows []T, key func(T) string) []T {
	index := make(map[string]int, len(rows))
	deduped := make([]T, 0, len(rows))

	for _, row := range rows {
		k := key(row)
		if i, ok := index[k]; ok {
			deduped[i] = row
			continue
		}

		index[k] = len(deduped)
		deduped = append(deduped, row)
	}

	return deduped
}

func periodKey(accountID string, from, to time.Time, parts ...string) string {
	return strings.Join(append([]string{accountID, utils.FormatDate(from), utils.FormatDate(to)}, parts...), "|")
}

func wrapDBError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}

	return fmt.Errorf("falha ao executar a query: %w", err)
}

func nullableFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *value, Valid: true}
}

func floatPointer(value sql.NullFloat64) *float64 {
	if !value.Valid {
		return nil
	}

	v := value.Float64
	return &v
}

func marshalJSON(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar JSON: %w", err)
	}

	return data, nil
}

func timePointer(t time.Time) *time.Time {
	return &t
}

// localDate remonta uma coluna DATE na meia-noite local. O driver devolve DATE
// em UTC e o período da requisição é montado no fuso do servidor.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func queryRows[T any](ctx context.Context, conn postgres.Queryer, query string, args []any, scan func(scanner) (T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao deserializar a linha: %w", err)
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return result, nil
}

func columns(groups ...[]string) []string {
	all := make([]string, 0)
	for _, group := range groups {
		all = append(all, group...)
	}
	return all
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const accountsTable = "meta_ad_accounts"

const accountColumns = "id, client_id, meta_account_id, name, account_status, currency, timezone_name, last_sync_at"

type AccountRepository interface {
	GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error)
	// ListByClient ignora as contas cujo meta_account_id está em excluded
	ListByClient(ctx context.Context, clientID string, excluded []string) ([]*domain.AdAccount, error)
	// UpsertMany grava as contas de um cliente e carimba last_sync_at. Contas novas recebem o ID informado.
	UpsertMany(ctx context.Context, accounts []*domain.AdAccount, syncedAt time.Time) error
}

type accountRepository struct {
	conn postgres.Queryer
}

func NewAccountRepository(conn postgres.Queryer) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) GetByID(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	query, args, err := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(squirrel.Eq{"id": accountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	account, err := scanAccount(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return account, nil
}

func (r *accountRepository) ListByClient(ctx context.Context, clientID string, excluded []string) ([]*domain.AdAccount, error) {
	query, args, err := buildListByClient(clientID, excluded)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanAccount)
}

func buildListByClient(clientID string, excluded []string) (string, []any, error) {
	queryBuilder := squirrel.
		Select(accountColumns).
		From(accountsTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(excluded) > 0 {
		queryBuilder = queryBuilder.Where("NOT (meta_account_id = ANY(?))", pq.Array(excluded))
	}

	return queryBuilder.ToSql()
}

func (r *accountRepository) UpsertMany(ctx context.Context, accounts []*domain.AdAccount, syncedAt time.Time) error {
	query, args, err := buildAccountUpsert(accounts, syncedAt)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if query == "" {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

func buildAccountUpsert(accounts []*domain.AdAccount, syncedAt time.Time) (string, []any, error) {
	accounts = dedupeByKey(accounts, func(account *domain.AdAccount) string {
		return account.ClientID + "|" + account.MetaAccountID
	})

	if len(accounts) == 0 {
		return "", nil, nil
	}

	query := squirrel.
		Insert(accountsTable).
		Columns("id", "client_id", "meta_account_id", "name", "account_status", "currency", "timezone_name", "last_sync_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, account := range accounts {
		account.LastSyncAt = timePointer(syncedAt)

		query = query.Values(
			account.ID,
			account.ClientID,
			account.MetaAccountID,
			account.Name,
			account.Status,
			account.Currency,
			account.TimezoneName,
			syncedAt,
		)
	}

	// O id existente é preservado no conflito
	query = query.Suffix(`
		ON CONFLICT (client_id, meta_account_id) DO UPDATE SET
			name = EXCLUDED.name,
			account_status = EXCLUDED.account_status,
			currency = EXCLUDED.currency,
			timezone_name = EXCLUDED.timezone_name,
			last_sync_at = EXCLUDED.last_sync_at
	`)

	return query.ToSql()
}

func scanAccount(row scanner) (*domain.AdAccount, error) {
	account := &domain.AdAccount{}

	var (
		currency     sql.NullString
		timezoneName sql.NullString
		lastSyncAt   sql.NullTime
	)

	if err := row.Scan(
		&account.ID,
		&account.ClientID,
		&account.MetaAccountID,
		&account.Name,
		&account.Status,
		&currency,
		&timezoneName,
		&lastSyncAt,
	); err != nil {
		return nil, err
	}

	account.Currency = currency.String
	account.TimezoneName = timezoneName.String
	if lastSyncAt.Valid {
		account.LastSyncAt = timePointer(lastSyncAt.Time)
	}

	return account, nil
}

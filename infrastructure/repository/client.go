package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const clientsTable = "clients"

const clientColumns = "id, name, slug, access_token, logo_url, status, created_at, updated_at"

type ClientRepository interface {
	GetByID(ctx context.Context, clientID string) (*domain.Client, error)
	GetByAccessToken(ctx context.Context, accessToken string) (*domain.Client, error)
	ListActive(ctx context.Context) ([]*domain.Client, error)
}

type clientRepository struct {
	conn postgres.Queryer
}

func NewClientRepository(conn postgres.Queryer) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return r.getClient(ctx, squirrel.Eq{"id": clientID})
}

// GetByAccessToken só encontra clientes ativos
func (r *clientRepository) GetByAccessToken(ctx context.Context, accessToken string) (*domain.Client, error) {
	return r.getClient(ctx, squirrel.Eq{"access_token": accessToken, "status": domain.ClientStatusActive})
}

func (r *clientRepository) getClient(ctx context.Context, where squirrel.Eq) (*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns).
		From(clientsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	client, err := scanClient(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapDBError(err)
	}

	return client, nil
}

func (r *clientRepository) ListActive(ctx context.Context) ([]*domain.Client, error) {
	query, args, err := squirrel.
		Select(clientColumns).
		From(clientsTable).
		Where(squirrel.Eq{"status": domain.ClientStatusActive}).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return queryRows(ctx, r.conn, query, args, scanClient)
}

func scanClient(row scanner) (*domain.Client, error) {
	client := &domain.Client{}

	var logoURL sql.NullString

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Slug,
		&client.AccessToken,
		&logoURL,
		&client.Status,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if logoURL.Valid {
		client.LogoURL = &logoURL.String
	}

	return client, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const syncLogsTable = "sync_logs"

type SyncLogRepository interface {
	Start(ctx context.Context, log *domain.SyncLog) error
	Finish(ctx context.Context, log *domain.SyncLog) error
}

type syncLogRepository struct {
	conn postgres.Queryer
}

func NewSyncLogRepository(conn postgres.Queryer) SyncLogRepository {
	return &syncLogRepository{
		conn: conn,
	}
}

func (r *syncLogRepository) Start(ctx context.Context, log *domain.SyncLog) error {
	query, args, err := squirrel.
		Insert(syncLogsTable).
		Columns("id", "client_id", "sync_type", "status", "records_synced", "started_at").
		Values(log.ID, log.ClientID, log.SyncType, log.Status, log.RecordsSynced, log.StartedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

// Finish grava o status final, a quantidade sincronizada e o erro (se houver)
func (r *syncLogRepository) Finish(ctx context.Context, log *domain.SyncLog) error {
	if log.CompletedAt == nil {
		log.CompletedAt = timePointer(time.Now())
	}

	query, args, err := squirrel.
		Update(syncLogsTable).
		Set("status", log.Status).
		Set("records_synced", log.RecordsSynced).
		Set("error_message", log.ErrorMessage).
		Set("completed_at", *log.CompletedAt).
		Where(squirrel.Eq{"id": log.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return wrapDBError(err)
	}

	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/vfg2006/ads-insights-api/internal/config"
)

// Connection é o pool compartilhado por todos os repositórios
type Connection struct {
	*sql.DB
}

var _ Queryer = (*Connection)(nil)

// NewConnection abre o pool, aplica os limites configurados e valida a conexão
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao abrir conexão com o banco")
	}

	applyPool(db, cfg)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "falha ao validar conexão com o banco")
	}

	return &Connection{DB: db}, nil
}

func applyPool(db *sql.DB, cfg config.Database) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// Stats resume o pool para o log de inicialização
func (c *Connection) Stats() map[string]any {
	stats := c.DB.Stats()

	return map[string]any{
		"max_open":  stats.MaxOpenConnections,
		"open":      stats.OpenConnections,
		"in_use":    stats.InUse,
		"idle":      stats.Idle,
		"wait_time": stats.WaitDuration.Round(time.Millisecond).String(),
	}
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/database/migrations"
	"github.com/vfg2006/ads-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/api"
	"github.com/vfg2006/ads-insights-api/internal/api/handler"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/scheduler"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, pgConn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
		logrus.Info("Migrações aplicadas com sucesso")
	}

	clientRepo := repository.NewClientRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	syncLogRepo := repository.NewSyncLogRepository(pgConn)

	cache := insighting.CacheRepositories{
		Accounts:  repository.NewAccountMetricsRepository(pgConn, repository.DefaultClock),
		Campaigns: repository.NewCampaignMetricsRepository(pgConn, repository.DefaultClock),
		AdSets:    repository.NewAdSetMetricsRepository(pgConn, repository.DefaultClock),
		Ads:       repository.NewAdMetricsRepository(pgConn, repository.DefaultClock),
		Trends:    repository.NewTrendRepository(pgConn, repository.DefaultClock),
		Rankings:  repository.NewAdRankingRepository(pgConn, repository.DefaultClock),
	}

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	authenticator := authenticating.NewService(clientRepo, cfg)
	accountService := account.NewService(accountRepo, syncLogRepo, metaIntegrator, cfg)
	insightService := insighting.NewService(cfg, metaIntegrator, accountService, cache)

	accountSyncService := scheduler.NewAccountSyncService(clientRepo, accountService, cfg)
	if err := accountSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de contas")
	}

	server, err := api.New(
		cfg,
		insightService,
		accountService,
		authenticator,
		handler.CronJobServices{handler.CronJobTypeAccounts: accountSyncService},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(conn.Stats()).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

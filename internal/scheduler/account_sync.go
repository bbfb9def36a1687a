package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const defaultMaxConcurrentSyncs = 2

// AccountSyncer é a parte do serviço de contas usada pelo agendador
type AccountSyncer interface {
	SyncAccounts(ctx context.Context, tenantID string) (*domain.SyncAccountsResponse, error)
}

type AccountSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SyncResult resume uma rodada de sincronização
type SyncResult struct {
	Clients  int
	Accounts int
	Failures int
}

// AccountSyncService ressincroniza periodicamente as contas de todos os clientes ativos.
// Roda fora do caminho das requisições e vem desabilitado por padrão.
type AccountSyncService struct {
	scheduler           *gocron.Scheduler
	config              AccountSyncConfig
	clientRepo          repository.ClientRepository
	accountService      AccountSyncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          SyncResult
}

func NewAccountSyncService(
	clientRepo repository.ClientRepository,
	accountService AccountSyncer,
	appConfig *config.Config,
) *AccountSyncService {
	syncConfig := AccountSyncConfig{
		CronSchedule:      appConfig.AccountSync.CronSchedule,
		MaxConcurrentJobs: defaultMaxConcurrentSyncs,
		SyncEnabled:       appConfig.AccountSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de contas carregada")

	return &AccountSyncService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         syncConfig,
		clientRepo:     clientRepo,
		accountService: accountService,
	}
}

// Start agenda a sincronização e para o agendador quando ctx for cancelado
func (s *AccountSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(ctx); err != nil {
			logrus.WithError(err).Error("Erro na sincronização agendada de contas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// ErrSyncRunning indica que já existe uma rodada em andamento
var ErrSyncRunning = errors.New("sincronização de contas já em andamento")

// RunOnce sincroniza as contas de todos os clientes ativos, no máximo MaxConcurrentJobs por vez
func (s *AccountSyncService) RunOnce(ctx context.Context) (SyncResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return SyncResult{}, ErrSyncRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	clients, err := s.clientRepo.ListActive(ctx)
	if err != nil {
		return SyncResult{}, errors.Wrap(err, "erro ao listar clientes ativos")
	}

	result := SyncResult{Clients: len(clients)}
	if len(clients) == 0 {
		logrus.Info("Nenhum cliente ativo para sincronização de contas")
		s.finish(result)
		return result, nil
	}

	maxConcurrent := s.config.MaxConcurrentJobs
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		semaphore = make(chan struct{}, maxConcurrent)
	)

	for _, client := range clients {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(client *domain.Client) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			response, err := s.accountService.SyncAccounts(ctx, client.ID)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				result.Failures++
				logrus.WithError(err).WithField("client_id", client.ID).Error("Erro ao sincronizar contas do cliente")
				return
			}
			result.Accounts += response.Quantity
		}(client)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"clients":  result.Clients,
		"accounts": result.Accounts,
		"failures": result.Failures,
	}).Info("Sincronização de contas concluída")

	s.finish(result)

	return result, nil
}

func (s *AccountSyncService) finish(result SyncResult) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	s.lastResult = result
}

// TriggerManualSync dispara uma rodada em background. Devolve false se já houver uma rodando.
func (s *AccountSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de contas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual de contas")
	go func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrSyncRunning) {
			logrus.WithError(err).Error("Erro na sincronização manual de contas")
		}
	}()

	return true
}

func (s *AccountSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_clients":      s.lastResult.Clients,
		"last_sync_accounts":     s.lastResult.Accounts,
		"last_sync_failures":     s.lastResult.Failures,
	}
}

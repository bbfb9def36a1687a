package account

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/infrastructure/repository"
	"github.com/vfg2006/ads-insights-api/internal/config"
	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
	"github.com/vfg2006/ads-insights-api/pkg/metrics"
	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// AccountLister é a parte do integrador da Meta usada na sincronização
type AccountLister interface {
	FetchAccountsForTenant(ctx context.Context) ([]domain.AccountInfo, error)
}

type AccountService interface {
	ListAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error)
	ResolveAccount(ctx context.Context, accountID string) (*domain.AdAccount, error)
	CheckOwnership(ctx context.Context, tenantID, accountID string) error
	SyncAccounts(ctx context.Context, tenantID string) (*domain.SyncAccountsResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	syncLogRepository repository.SyncLogRepository
	metaService       AccountLister
	excluded          map[string]struct{}
	now               func() time.Time
}

var _ AccountService = (*Service)(nil)

func NewService(
	accountRepository repository.AccountRepository,
	syncLogRepository repository.SyncLogRepository,
	metaService AccountLister,
	cfg *config.Config,
) *Service {
	excluded := make(map[string]struct{}, len(cfg.Cache.ExcludedAccounts))
	for _, id := range cfg.Cache.ExcludedAccounts {
		excluded[domain.MetaAccountRef(id)] = struct{}{}
	}

	return &Service{
		accountRepository: accountRepository,
		syncLogRepository: syncLogRepository,
		metaService:       metaService,
		excluded:          excluded,
		now:               time.Now,
	}
}

// IsExcluded compara sempre na forma act_XXXX
func (s *Service) IsExcluded(metaAccountID string) bool {
	_, ok := s.excluded[domain.MetaAccountRef(metaAccountID)]
	return ok
}

func (s *Service) excludedList() []string {
	list := make([]string, 0, len(s.excluded))
	for id := range s.excluded {
		list = append(list, id)
	}
	return list
}

func (s *Service) ListAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error) {
	if tenantID == "" {
		return nil, NewAccountError(ErrTenantIDRequired, apiErrors.ErrMissingRequiredData, "Cliente não informado")
	}

	accounts, err := s.accountRepository.ListByClient(ctx, tenantID, s.excludedList())
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", tenantID).Error("accounts: erro ao listar contas")
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas no banco de dados")
	}

	// o banco já filtra, mas contas gravadas antes de entrar na lista ainda podem aparecer com outro formato de id
	filtered := make([]*domain.AdAccount, 0, len(accounts))
	for _, account := range accounts {
		if !s.IsExcluded(account.MetaAccountID) {
			filtered = append(filtered, account)
		}
	}

	return filtered, nil
}

// ResolveAccount devolve nil, nil quando a conta não existe ou está excluída
func (s *Service) ResolveAccount(ctx context.Context, accountID string) (*domain.AdAccount, error) {
	if accountID == "" {
		return nil, nil
	}

	account, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account == nil || s.IsExcluded(account.MetaAccountID) {
		return nil, nil
	}

	return account, nil
}

// CheckOwnership só falha quando a conta existe e é de outro cliente.
// Conta inexistente segue adiante e a consulta responde vazio.
func (s *Service) CheckOwnership(ctx context.Context, tenantID, accountID string) error {
	if accountID == "" {
		return NewAccountError(ErrAccountIDRequired, apiErrors.ErrMissingRequiredData, "Conta não informada")
	}

	account, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Erro ao buscar conta no banco de dados")
	}

	if account != nil && account.ClientID != tenantID {
		return NewAccountErrorWithID(ErrAccountForbidden, apiErrors.ErrInsufficientPrivilege, accountID, "Conta pertence a outro cliente")
	}

	return nil
}

// SyncAccounts busca a listagem da Meta e grava as contas do cliente. Pode ser chamado
// quantas vezes for preciso, o upsert usa (client_id, meta_account_id).
func (s *Service) SyncAccounts(ctx context.Context, tenantID string) (*domain.SyncAccountsResponse, error) {
	response := &domain.SyncAccountsResponse{
		Quantity: 0,
		Message:  "Erro ao sincronizar contas",
		Error:    true,
		Accounts: []*domain.AdAccount{},
	}

	if tenantID == "" {
		return response, NewAccountError(ErrTenantIDRequired, apiErrors.ErrMissingRequiredData, "Cliente não informado")
	}

	logger := log.ForContext(ctx).WithField("client_id", tenantID)

	syncLog := s.startSyncLog(ctx, tenantID)

	accounts, err := s.syncAccounts(ctx, tenantID)
	if err != nil {
		metrics.AccountSyncsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		s.finishSyncLog(ctx, syncLog, 0, err)
		return response, err
	}

	metrics.AccountSyncsTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	s.finishSyncLog(ctx, syncLog, len(accounts), nil)

	logger.Infof("accounts: %d contas sincronizadas", len(accounts))

	response.Quantity = len(accounts)
	response.Message = fmt.Sprintf("%d contas foram sincronizadas com sucesso", len(accounts))
	response.Error = false
	response.Accounts = accounts

	return response, nil
}

func (s *Service) syncAccounts(ctx context.Context, tenantID string) ([]*domain.AdAccount, error) {
	infos, err := s.metaService.FetchAccountsForTenant(ctx)
	if err != nil {
		logrus.WithError(err).Error("accounts: erro ao obter contas da Meta")
		return nil, NewAccountError(ErrMetaIntegration, apiErrors.ErrExternalService, "Falha ao obter contas da API do Meta")
	}

	existing, err := s.accountRepository.ListByClient(ctx, tenantID, nil)
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao consultar contas existentes no banco de dados")
	}

	idsByMetaID := make(map[string]string, len(existing))
	for _, account := range existing {
		idsByMetaID[domain.MetaAccountRef(account.MetaAccountID)] = account.ID
	}

	toSave := make([]*domain.AdAccount, 0, len(infos))
	for _, info := range infos {
		metaID := domain.MetaAccountRef(info.MetaAccountID)
		if metaID == "" || s.IsExcluded(metaID) {
			continue
		}

		accountID, ok := idsByMetaID[metaID]
		if !ok {
			accountID, err = utils.GenerateID()
			if err != nil {
				return nil, NewAccountError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador único para conta")
			}
			idsByMetaID[metaID] = accountID
		}

		toSave = append(toSave, &domain.AdAccount{
			ID:            accountID,
			ClientID:      tenantID,
			MetaAccountID: metaID,
			Name:          info.Name,
			Status:        domain.AdAccountStatusFromCode(info.StatusCode),
			Currency:      info.Currency,
			TimezoneName:  info.TimezoneName,
		})
	}

	if len(toSave) > 0 {
		if err := s.accountRepository.UpsertMany(ctx, toSave, s.now()); err != nil {
			log.ForContext(ctx).WithError(err).WithField("client_id", tenantID).Error("accounts: erro ao salvar contas")
			return nil, NewAccountError(ErrSaveAccounts, apiErrors.ErrDatabaseOperation, "Falha ao salvar contas")
		}
	}

	accounts, err := s.accountRepository.ListByClient(ctx, tenantID, s.excludedList())
	if err != nil {
		return nil, NewAccountError(ErrFetchAccounts, apiErrors.ErrDatabaseOperation, "Falha ao listar contas sincronizadas")
	}

	return accounts, nil
}

// startSyncLog devolve nil quando não foi possível registrar, a sincronização segue mesmo assim
func (s *Service) startSyncLog(ctx context.Context, tenantID string) *domain.SyncLog {
	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("accounts: erro ao gerar id do sync log")
		return nil
	}

	syncLog := &domain.SyncLog{
		ID:        id,
		ClientID:  tenantID,
		SyncType:  domain.SyncTypeAccounts,
		Status:    domain.SyncStatusRunning,
		StartedAt: s.now(),
	}

	if err := s.syncLogRepository.Start(ctx, syncLog); err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", tenantID).Warn("accounts: erro ao registrar início da sincronização")
		return nil
	}

	return syncLog
}

func (s *Service) finishSyncLog(ctx context.Context, syncLog *domain.SyncLog, records int, syncErr error) {
	if syncLog == nil {
		return
	}

	completedAt := s.now()
	syncLog.CompletedAt = &completedAt
	syncLog.RecordsSynced = records
	syncLog.Status = domain.SyncStatusSuccess

	if syncErr != nil {
		message := syncErr.Error()
		syncLog.Status = domain.SyncStatusError
		syncLog.ErrorMessage = &message
	}

	if err := s.syncLogRepository.Finish(ctx, syncLog); err != nil {
		log.ForContext(ctx).WithError(err).WithField("sync_log_id", syncLog.ID).Warn("accounts: erro ao finalizar o sync log")
	}
}

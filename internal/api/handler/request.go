package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é trocado nos testes para fixar os presets de período
var now = time.Now

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
	}
}

func writeJSONStatus(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func accountIDParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("account_id")
}

// parsePeriod aceita from/to (YYYY-MM-DD) ou um preset em period. Sem nada, usa o preset padrão.
func parsePeriod(r *http.Request) (domain.Period, error) {
	query := r.URL.Query()

	from, to := query.Get("from"), query.Get("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			return domain.Period{}, domain.ErrInvalidPeriod
		}
		return domain.ParsePeriod(from, to)
	}

	preset := domain.PeriodPreset(strings.ToLower(query.Get("period")))
	if preset == "" {
		preset = domain.DefaultPeriodPreset
	}

	return domain.PeriodFromPreset(preset, now())
}

// parseLimit devolve 0 quando ausente, o serviço aplica o limite padrão
func parseLimit(r *http.Request) (int, error) {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, errors.New("limit deve ser um inteiro positivo")
	}

	return limit, nil
}

func writePeriodError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Período inválido", map[string]any{
		"error":   err.Error(),
		"presets": domain.PeriodOptions,
	})
}

// writeServiceError traduz os erros das consultas para o formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, retryAfterSeconds int, message string) {
	logger := log.ForContext(r.Context())

	if apiErrors.WriteUpstreamError(w, err, retryAfterSeconds) {
		logger.WithError(err).Warn("Erro retornado pela Meta")
		return
	}

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		logger.WithError(err).Error(message)
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	logger.WithError(err).Error(message)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-insights-api/internal/domain"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/apiErrors"
)

// periodQuery resolve conta e período comuns a todas as consultas de insights.
// Devolve false quando a resposta de erro já foi escrita.
func periodQuery(w http.ResponseWriter, r *http.Request) (string, domain.Period, bool) {
	accountID := accountIDParam(r)
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
		return "", domain.Period{}, false
	}

	period, err := parsePeriod(r)
	if err != nil {
		writePeriodError(w, err)
		return "", domain.Period{}, false
	}

	return accountID, period, true
}

func GetAccountSummary(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		summary, err := service.GetAccountSummary(r.Context(), accountID, period)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar resumo da conta")
			return
		}

		writeJSON(w, summary)
	})
}

func GetCampaignMetrics(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		campaigns, err := service.GetCampaignMetrics(r.Context(), accountID, period)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar campanhas")
			return
		}

		writeJSON(w, campaigns)
	})
}

// GetManagerCampaigns é a visão do gerenciador: campanhas com orçamento e status
func GetManagerCampaigns(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		campaigns, err := service.GetManagerCampaigns(r.Context(), accountID, period)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar campanhas do gerenciador")
			return
		}

		writeJSON(w, campaigns)
	})
}

func GetAdSets(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		adSets, err := service.GetAdSets(r.Context(), accountID, period, r.URL.Query().Get("campaign_id"))
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar conjuntos de anúncios")
			return
		}

		writeJSON(w, adSets)
	})
}

func GetAds(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		ads, err := service.GetAds(r.Context(), accountID, period, r.URL.Query().Get("adset_id"))
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar anúncios")
			return
		}

		writeJSON(w, ads)
	})
}

func GetTopAds(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return rankingHandler(service.GetTopAds, retryAfterSeconds)
}

func GetBottomAds(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return rankingHandler(service.GetBottomAds, retryAfterSeconds)
}

type rankingQuery func(ctx context.Context, accountID string, period domain.Period, limit int) ([]*domain.AdRanking, error)

func rankingHandler(query rankingQuery, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		ads, err := query(r.Context(), accountID, period, limit)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar ranking de anúncios")
			return
		}

		writeJSON(w, ads)
	})
}

// GetTrend devolve a série diária da conta ou de uma campanha (entity_id)
func GetTrend(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		points, err := service.GetTrend(r.Context(), accountID, r.URL.Query().Get("entity_id"), period)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar tendência")
			return
		}

		writeJSON(w, points)
	})
}

// GetBreakdown aceita várias dimensões separadas por vírgula. Dimensões repetidas
// são servidas pelo memo da requisição.
func GetBreakdown(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		dimensions, err := parseDimensions(r.URL.Query().Get("dimension"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dimensão de breakdown inválida", map[string]any{
				"dimensions": domain.BreakdownDimensions,
			})
			return
		}

		memo := insighting.NewBreakdownMemo()
		response := make(map[domain.BreakdownDimension][]domain.BreakdownRow, len(dimensions))

		for _, dimension := range dimensions {
			rows, err := memo.Do(accountID, period, dimension, func() ([]domain.BreakdownRow, error) {
				return service.GetBreakdown(r.Context(), accountID, period, dimension)
			})
			if err != nil {
				writeServiceError(w, r, err, retryAfterSeconds, "Erro ao buscar breakdown")
				return
			}
			response[dimension] = rows
		}

		writeJSON(w, response)
	})
}

func parseDimensions(value string) ([]domain.BreakdownDimension, error) {
	if strings.TrimSpace(value) == "" {
		return nil, domain.ErrInvalidBreakdownDimension
	}

	parts := strings.Split(value, ",")
	dimensions := make([]domain.BreakdownDimension, 0, len(parts))
	for _, part := range parts {
		dimension, err := domain.ParseBreakdownDimension(part)
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, dimension)
	}

	return dimensions, nil
}

func GetDiagnostic(service insighting.Insighter, retryAfterSeconds int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, period, ok := periodQuery(w, r)
		if !ok {
			return
		}

		level, err := domain.ParseDiagnosticLevel(r.URL.Query().Get("level"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Nível de diagnóstico inválido", nil)
			return
		}

		diagnostic, err := service.GetDiagnostic(r.Context(), accountID, period, level)
		if err != nil {
			writeServiceError(w, r, err, retryAfterSeconds, "Erro ao montar diagnóstico")
			return
		}

		writeJSON(w, diagnostic)
	})
}

// PeriodPresets lista os presets aceitos em ?period=
func PeriodPresets() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, domain.PeriodOptions)
	})
}

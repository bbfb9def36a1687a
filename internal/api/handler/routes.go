package handler

import (
	"net/http"

	"github.com/vfg2006/ads-insights-api/internal/api/handler/router"
	"github.com/vfg2006/ads-insights-api/internal/usecases/account"
	"github.com/vfg2006/ads-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func AdAccounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/v1/accounts/sync",
			Method:  http.MethodPost,
			Handler: SyncAccounts(service),
		},
	}
}

// Insights registra as consultas por conta. Todas passam pela checagem de dono da conta.
func Insights(service insighting.Insighter, accountService account.AccountService, retryAfterSeconds int) []router.Route {
	ownership := []func(http.Handler) http.Handler{middleware.AccountOwnership(accountService)}

	routes := []router.Route{
		{Path: "/v1/accounts/:account_id/summary", Handler: GetAccountSummary(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/campaigns", Handler: GetCampaignMetrics(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/campaigns/manager", Handler: GetManagerCampaigns(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/adsets", Handler: GetAdSets(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/ads", Handler: GetAds(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/ads/top", Handler: GetTopAds(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/ads/bottom", Handler: GetBottomAds(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/trend", Handler: GetTrend(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/breakdowns", Handler: GetBreakdown(service, retryAfterSeconds)},
		{Path: "/v1/accounts/:account_id/diagnostic", Handler: GetDiagnostic(service, retryAfterSeconds)},
	}

	for i := range routes {
		routes[i].Method = http.MethodGet
		routes[i].Middlewares = ownership
	}

	return append(routes, router.Route{
		Path:    "/v1/periods",
		Method:  http.MethodGet,
		Handler: PeriodPresets(),
	})
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
	OutcomeOK    = "ok"

	OutcomeRateLimited = "rate_limited"
)

var (
	// CacheLookupsTotal conta as consultas ao cache por nível e resultado (hit, miss, error)
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_insights_cache_lookups_total",
			Help: "Total de consultas ao cache de métricas",
		},
		[]string{"level", "outcome"},
	)

	CacheWriteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_insights_cache_write_failures_total",
			Help: "Total de falhas ao gravar no cache de métricas",
		},
		[]string{"level"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_insights_meta_requests_total",
			Help: "Total de chamadas à Graph API da Meta",
		},
		[]string{"operation", "outcome"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_insights_meta_request_duration_seconds",
			Help:    "Latência das chamadas à Graph API da Meta",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_insights_http_requests_total",
			Help: "Total de requisições HTTP atendidas",
		},
		[]string{"method", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ads_insights_http_request_duration_seconds",
			Help:    "Latência das requisições HTTP",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)

	AccountSyncsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ads_insights_account_syncs_total",
			Help: "Total de sincronizações de contas por resultado",
		},
		[]string{"outcome"},
	)
)

func RecordCacheLookup(level, outcome string) {
	CacheLookupsTotal.WithLabelValues(level, outcome).Inc()
}

func RecordCacheWriteFailure(level string) {
	CacheWriteFailuresTotal.WithLabelValues(level).Inc()
}

func RecordUpstreamRequest(operation, outcome string, started time.Time) {
	UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
	UpstreamDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func RecordHTTPRequest(method string, statusCode int, started time.Time) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}

package metaclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/config"
)

type Client interface {
	GetInsights(ctx context.Context, operation, objectID string, params *InsightParams) ([]metadomain.InsightRow, error)
	GetCampaigns(ctx context.Context, accountRef string) ([]metadomain.CampaignListItem, error)
	GetAdSets(ctx context.Context, accountRef, campaignID string) ([]metadomain.AdSetListItem, error)
	GetAdStatuses(ctx context.Context, adIDs []string) (map[string]metadomain.AdStatusNode, error)
	GetAdThumbnails(ctx context.Context, adIDs []string) (map[string]metadomain.AdCreativeNode, error)
	GetAdAccounts(ctx context.Context) ([]metadomain.AdAccount, error)
}

var _ Client = (*MetaClient)(nil)

type MetaClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

type Option func(*MetaClient)

// WithHTTPClient troca o http.Client padrão (usado nos testes com httptest)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *MetaClient) {
		c.httpClient = httpClient
	}
}

// WithLimiter troca o limitador de ritmo das chamadas
func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *MetaClient) {
		c.limiter = limiter
	}
}

func NewClient(cfg *config.Config, opts ...Option) *MetaClient {
	limit := rate.Inf
	if cfg.Meta.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Meta.RequestsPerSecond)
	}

	burst := cfg.Meta.RequestBurst
	if burst <= 0 {
		burst = 1
	}

	client := &MetaClient{
		baseURL:     cfg.Meta.URL,
		accessToken: cfg.Meta.AccessToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(limit, burst),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

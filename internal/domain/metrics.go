package domain

import (
	"time"

	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// Metrics é o bloco de métricas comum a conta, campanha, conjunto e anúncio
type Metrics struct {
	Spend         float64 `json:"spend"`
	Results       int64   `json:"results"`
	CostPerResult float64 `json:"cost_per_result"`
	Impressions   int64   `json:"impressions"`
	Reach         int64   `json:"reach"`
	Frequency     float64 `json:"frequency"`
	CTR           float64 `json:"ctr"`
	CPM           float64 `json:"cpm"`
	Clicks        int64   `json:"clicks"`
	Leads         int64   `json:"leads"`
	Messages      int64   `json:"messages"`
	Purchases     int64   `json:"purchases"`
}

// ApplyResults copia o resultado consolidado para as métricas
func (m *Metrics) ApplyResults(summary ResultSummary) {
	m.Leads = summary.Leads
	m.Messages = summary.Messages
	m.Purchases = summary.Purchases
	m.Results = summary.Results
	m.CostPerResult = utils.RoundWithTwoDecimalPlace(summary.CostPerResult)
}

// AccountSummary são as métricas agregadas de uma conta no período
type AccountSummary struct {
	AccountID string    `json:"account_id"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	Metrics
	RawActions []Action   `json:"raw_actions,omitempty"`
	SyncedAt   *time.Time `json:"synced_at,omitempty"`
}

type CampaignSummary struct {
	AccountID      string    `json:"account_id"`
	MetaCampaignID string    `json:"meta_campaign_id"`
	Name           string    `json:"campaign_name"`
	Status         string    `json:"campaign_status,omitempty"`
	DailyBudget    *float64  `json:"daily_budget,omitempty"`
	LifetimeBudget *float64  `json:"lifetime_budget,omitempty"`
	DateFrom       time.Time `json:"date_from"`
	DateTo         time.Time `json:"date_to"`
	Metrics
	RawActions []Action   `json:"raw_actions,omitempty"`
	SyncedAt   *time.Time `json:"synced_at,omitempty"`
}

// CampaignBudget vem da listagem de campanhas, já convertida de centavos
type CampaignBudget struct {
	MetaCampaignID string   `json:"meta_campaign_id"`
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	DailyBudget    *float64 `json:"daily_budget,omitempty"`
	LifetimeBudget *float64 `json:"lifetime_budget,omitempty"`
}

type AdSetSummary struct {
	AccountID      string    `json:"account_id"`
	MetaAdSetID    string    `json:"meta_adset_id"`
	Name           string    `json:"adset_name"`
	Status         string    `json:"adset_status"`
	MetaCampaignID string    `json:"meta_campaign_id"`
	CampaignName   string    `json:"campaign_name"`
	DailyBudget    *float64  `json:"daily_budget,omitempty"`
	LifetimeBudget *float64  `json:"lifetime_budget,omitempty"`
	DateFrom       time.Time `json:"date_from"`
	DateTo         time.Time `json:"date_to"`
	Metrics
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

type AdSummary struct {
	AccountID      string    `json:"account_id"`
	MetaAdID       string    `json:"meta_ad_id"`
	Name           string    `json:"ad_name"`
	Status         string    `json:"ad_status"`
	MetaAdSetID    string    `json:"meta_adset_id"`
	AdSetName      string    `json:"adset_name"`
	MetaCampaignID string    `json:"meta_campaign_id"`
	CampaignName   string    `json:"campaign_name"`
	DateFrom       time.Time `json:"date_from"`
	DateTo         time.Time `json:"date_to"`
	Metrics
	SyncedAt *time.Time `json:"synced_at,omitempty"`
}

// AdRanking é a linha usada tanto pelos melhores quanto pelos piores anúncios
type AdRanking struct {
	AccountID     string     `json:"account_id"`
	MetaAdID      string     `json:"meta_ad_id"`
	Name          string     `json:"ad_name"`
	ImageURL      *string    `json:"image_url,omitempty"`
	Spend         float64    `json:"spend"`
	Impressions   int64      `json:"impressions"`
	Reach         int64      `json:"reach"`
	CTR           float64    `json:"ctr"`
	Results       int64      `json:"results"`
	CostPerResult float64    `json:"cost_per_result"`
	DateFrom      time.Time  `json:"date_from"`
	DateTo        time.Time  `json:"date_to"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
}

type TrendPoint struct {
	Date    string  `json:"date"`
	Spend   float64 `json:"spend"`
	Results int64   `json:"results"`
	CPL     float64 `json:"cpl"`
}

// TrendTarget indica de onde vem a série diária. EntityID vazio significa a conta inteira.
type TrendTarget struct {
	AccountRef string
	EntityID   string
}

// TrendSeries é a série diária como persistida no cache.
// AccountID, em todos os registros de cache, é o id interno da conta e não o act_ da Meta.
type TrendSeries struct {
	AccountID string       `json:"account_id"`
	EntityID  string       `json:"entity_id"`
	DateFrom  time.Time    `json:"date_from"`
	DateTo    time.Time    `json:"date_to"`
	Points    []TrendPoint `json:"points"`
	SyncedAt  *time.Time   `json:"synced_at,omitempty"`
}

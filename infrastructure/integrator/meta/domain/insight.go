package metadomain

type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// InsightRow é uma linha de /insights. A Meta devolve todos os números como string
// e só preenche os campos pedidos em fields e breakdowns.
type InsightRow struct {
	AccountID      string   `json:"account_id,omitempty"`
	CampaignID     string   `json:"campaign_id,omitempty"`
	CampaignName   string   `json:"campaign_name,omitempty"`
	AdSetID        string   `json:"adset_id,omitempty"`
	AdSetName      string   `json:"adset_name,omitempty"`
	AdID           string   `json:"ad_id,omitempty"`
	AdName         string   `json:"ad_name,omitempty"`
	Spend          string   `json:"spend,omitempty"`
	Impressions    string   `json:"impressions,omitempty"`
	Reach          string   `json:"reach,omitempty"`
	Frequency      string   `json:"frequency,omitempty"`
	Clicks         string   `json:"clicks,omitempty"`
	CPM            string   `json:"cpm,omitempty"`
	CTR            string   `json:"ctr,omitempty"`
	Actions        []Action `json:"actions,omitempty"`
	CostPerActions []Action `json:"cost_per_action_type,omitempty"`
	DateStart      string   `json:"date_start,omitempty"`
	DateStop       string   `json:"date_stop,omitempty"`

	PublisherPlatform string `json:"publisher_platform,omitempty"`
	PlatformPosition  string `json:"platform_position,omitempty"`
	ImpressionDevice  string `json:"impression_device,omitempty"`
	Age               string `json:"age,omitempty"`
	Gender            string `json:"gender,omitempty"`
}

type InsightsResponse struct {
	Data   []InsightRow `json:"data"`
	Paging Paging       `json:"paging"`
}

package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// CampaignListItem vem de /act_X/campaigns. Orçamentos chegam em centavos e como string.
type CampaignListItem struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EffectiveStatus string `json:"effective_status"`
	DailyBudget     string `json:"daily_budget,omitempty"`
	LifetimeBudget  string `json:"lifetime_budget,omitempty"`
}

type CampaignsResponse struct {
	Data   []CampaignListItem `json:"data"`
	Paging Paging             `json:"paging"`
}

type CampaignRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AdSetListItem struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	EffectiveStatus string       `json:"effective_status"`
	DailyBudget     string       `json:"daily_budget,omitempty"`
	LifetimeBudget  string       `json:"lifetime_budget,omitempty"`
	CampaignID      string       `json:"campaign_id"`
	Campaign        *CampaignRef `json:"campaign,omitempty"`
}

type AdSetsResponse struct {
	Data   []AdSetListItem `json:"data"`
	Paging Paging          `json:"paging"`
}

// AdStatusNode é cada entrada da resposta de /?ids=...&fields=id,effective_status
type AdStatusNode struct {
	ID              string `json:"id"`
	EffectiveStatus string `json:"effective_status"`
}

type AdCreative struct {
	ThumbnailURL string `json:"thumbnail_url"`
}

type AdCreativeNode struct {
	ID       string      `json:"id"`
	Creative *AdCreative `json:"creative,omitempty"`
}

package metaclient

import (
	"context"
	"net/url"
	"strings"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	listingLimit = "200"
	idsBatchSize = 50
)

func (c *MetaClient) GetCampaigns(ctx context.Context, accountRef string) ([]metadomain.CampaignListItem, error) {
	params := url.Values{}
	params.Set("fields", "id,name,effective_status,daily_budget,lifetime_budget")
	params.Set("limit", listingLimit)

	var response metadomain.CampaignsResponse
	if err := c.get(ctx, "campaigns list", accountRef+"/campaigns", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *MetaClient) GetAdSets(ctx context.Context, accountRef, campaignID string) ([]metadomain.AdSetListItem, error) {
	params := url.Values{}
	params.Set("fields", "id,name,effective_status,daily_budget,lifetime_budget,campaign_id,campaign{id,name}")
	params.Set("limit", listingLimit)

	if campaignID != "" {
		filtering, err := json.Marshal([]Filter{{Field: "campaign.id", Operator: OperatorEqual, Value: campaignID}})
		if err != nil {
			return nil, domain.NewUpstreamError("adsets list", 0, err.Error(), err)
		}
		params.Set("filtering", string(filtering))
	}

	var response metadomain.AdSetsResponse
	if err := c.get(ctx, "adsets list", accountRef+"/adsets", params, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetAdStatuses busca o effective_status em lotes de até 50 ids
func (c *MetaClient) GetAdStatuses(ctx context.Context, adIDs []string) (map[string]metadomain.AdStatusNode, error) {
	statuses := make(map[string]metadomain.AdStatusNode, len(adIDs))

	for _, batch := range chunk(adIDs, idsBatchSize) {
		params := url.Values{}
		params.Set("ids", strings.Join(batch, ","))
		params.Set("fields", "id,effective_status")

		var response map[string]metadomain.AdStatusNode
		if err := c.get(ctx, "ads status", "", params, &response); err != nil {
			return nil, err
		}

		for id, node := range response {
			statuses[id] = node
		}
	}

	return statuses, nil
}

func (c *MetaClient) GetAdThumbnails(ctx context.Context, adIDs []string) (map[string]metadomain.AdCreativeNode, error) {
	creatives := make(map[string]metadomain.AdCreativeNode, len(adIDs))

	for _, batch := range chunk(adIDs, idsBatchSize) {
		params := url.Values{}
		params.Set("ids", strings.Join(batch, ","))
		params.Set("fields", "id,creative{thumbnail_url}")

		var response map[string]metadomain.AdCreativeNode
		if err := c.get(ctx, "ads thumbnails", "", params, &response); err != nil {
			return nil, err
		}

		for id, node := range response {
			creatives[id] = node
		}
	}

	return creatives, nil
}

func chunk(ids []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		batches = append(batches, ids[start:end])
	}

	return batches
}

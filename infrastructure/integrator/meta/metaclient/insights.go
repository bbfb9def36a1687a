package metaclient

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const (
	OperatorEqual       = "EQUAL"
	OperatorGreaterThan = "GREATER_THAN"
)

type Filter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// SpendFilter restringe as linhas a entidades que gastaram no período
var SpendFilter = Filter{Field: "spend", Operator: OperatorGreaterThan, Value: "0"}

type InsightParams struct {
	Fields        []string
	Level         string
	Period        domain.Period
	Filters       []Filter
	Breakdowns    []string
	TimeIncrement int
	Limit         int
}

type timeRange struct {
	Since string `json:"since"`
	Until string `json:"until"`
}

func (p *InsightParams) Values() (url.Values, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(p.Fields, ","))

	tr, err := json.Marshal(timeRange{Since: p.Period.Since(), Until: p.Period.Until()})
	if err != nil {
		return nil, err
	}
	params.Set("time_range", string(tr))

	if p.Level != "" {
		params.Set("level", p.Level)
	}

	if len(p.Filters) > 0 {
		filtering, err := json.Marshal(p.Filters)
		if err != nil {
			return nil, err
		}
		params.Set("filtering", string(filtering))
	}

	if len(p.Breakdowns) > 0 {
		params.Set("breakdowns", strings.Join(p.Breakdowns, ","))
	}

	if p.TimeIncrement > 0 {
		params.Set("time_increment", strconv.Itoa(p.TimeIncrement))
	}

	if p.Limit > 0 {
		params.Set("limit", strconv.Itoa(p.Limit))
	}

	return params, nil
}

// GetInsights lê somente a primeira página de /{objectID}/insights (limit controla o tamanho)
func (c *MetaClient) GetInsights(ctx context.Context, operation, objectID string, params *InsightParams) ([]metadomain.InsightRow, error) {
	values, err := params.Values()
	if err != nil {
		return nil, domain.NewUpstreamError(operation, 0, err.Error(), err)
	}

	var response metadomain.InsightsResponse
	if err := c.get(ctx, operation, objectID+"/insights", values, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}

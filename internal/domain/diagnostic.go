package domain

import "errors"

var ErrInvalidDiagnosticLevel = errors.New("invalid diagnostic level")

type DiagnosticLevel string

const (
	DiagnosticLevelCampaign DiagnosticLevel = "campaign"
	DiagnosticLevelAd       DiagnosticLevel = "ad"
)

func ParseDiagnosticLevel(value string) (DiagnosticLevel, error) {
	switch DiagnosticLevel(value) {
	case "", DiagnosticLevelCampaign:
		return DiagnosticLevelCampaign, nil
	case DiagnosticLevelAd:
		return DiagnosticLevelAd, nil
	default:
		return "", ErrInvalidDiagnosticLevel
	}
}

type DiagnosticItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Status       string          `json:"status"`
	Spend        float64         `json:"spend"`
	CPL          float64         `json:"cpl"`
	Results      int64           `json:"results"`
	Type         DiagnosticLevel `json:"type"`
	CampaignName string          `json:"campaign_name,omitempty"`
	AdSetName    string          `json:"adset_name,omitempty"`
}

type HistogramBin struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type DiagnosticData struct {
	Items     []DiagnosticItem `json:"items"`
	Histogram []HistogramBin   `json:"histogram"`
}

var histogramRanges = []struct {
	label string
	upper float64
}{
	{label: "≤ R$10", upper: 10},
	{label: "R$10–20", upper: 20},
	{label: "R$20–30", upper: 30},
	{label: "R$30–40", upper: 40},
	{label: "> R$40"},
}

// BuildHistogram distribui os itens por faixa de CPL. Itens sem CPL ficam de fora
// e faixas vazias não são retornadas.
func BuildHistogram(items []DiagnosticItem) []HistogramBin {
	counts := make([]int, len(histogramRanges))

	for _, item := range items {
		if item.CPL <= 0 {
			continue
		}

		idx := len(histogramRanges) - 1
		for i, r := range histogramRanges[:len(histogramRanges)-1] {
			if item.CPL <= r.upper {
				idx = i
				break
			}
		}
		counts[idx]++
	}

	bins := make([]HistogramBin, 0, len(histogramRanges))
	for i, r := range histogramRanges {
		if counts[i] > 0 {
			bins = append(bins, HistogramBin{Range: r.label, Count: counts[i]})
		}
	}

	return bins
}

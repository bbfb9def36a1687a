package domain

import (
	"slices"

	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

// Action é um contador do action log da Meta (action_type → value)
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

var (
	LeadActionTypes     = []string{"lead", "onsite_conversion.lead_grouped"}
	MessageActionTypes  = []string{"onsite_conversion.messaging_conversation_started_7d"}
	PurchaseActionTypes = []string{"purchase", "omni_purchase"}
)

// ResultSummary é o resultado consolidado de uma entidade
type ResultSummary struct {
	Leads         int64
	Messages      int64
	Purchases     int64
	Results       int64
	CostPerResult float64
}

// SumActions soma os valores das actions cujos tipos estão em types
func SumActions(actions []Action, types []string) int64 {
	var total int64
	for _, action := range actions {
		if slices.Contains(types, action.ActionType) {
			total += utils.ParseInt(action.Value)
		}
	}

	return total
}

// SummarizeResults escolhe o resultado principal por prioridade: leads, mensagens e compras.
// Uma campanha de leads que registra mensagens continua reportando leads.
func SummarizeResults(actions []Action, spend float64) ResultSummary {
	summary := ResultSummary{
		Leads:     SumActions(actions, LeadActionTypes),
		Messages:  SumActions(actions, MessageActionTypes),
		Purchases: SumActions(actions, PurchaseActionTypes),
	}

	switch {
	case summary.Leads > 0:
		summary.Results = summary.Leads
	case summary.Messages > 0:
		summary.Results = summary.Messages
	default:
		summary.Results = summary.Purchases
	}

	summary.CostPerResult = CostPerResult(spend, summary.Results)

	return summary
}

// CostPerResult nunca divide por zero: sem resultados o custo é 0
func CostPerResult(spend float64, results int64) float64 {
	if results <= 0 {
		return 0
	}

	return spend / float64(results)
}

package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeResults(t *testing.T) {
	tests := []struct {
		name              string
		actions           []Action
		spend             float64
		expectedResults   int64
		expectedCost      float64
		expectedLeads     int64
		expectedMessages  int64
		expectedPurchases int64
	}{
		{
			name: "Leads têm prioridade sobre mensagens",
			actions: []Action{
				{ActionType: "lead", Value: "5"},
				{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "3"},
			},
			spend:            50,
			expectedResults:  5,
			expectedCost:     10,
			expectedLeads:    5,
			expectedMessages: 3,
		},
		{
			name: "Mensagens têm prioridade sobre compras",
			actions: []Action{
				{ActionType: "onsite_conversion.messaging_conversation_started_7d", Value: "3"},
				{ActionType: "purchase", Value: "2"},
			},
			spend:             30,
			expectedResults:   3,
			expectedCost:      10,
			expectedMessages:  3,
			expectedPurchases: 2,
		},
		{
			name: "Compras somam purchase e omni_purchase",
			actions: []Action{
				{ActionType: "purchase", Value: "2"},
				{ActionType: "omni_purchase", Value: "2"},
			},
			spend:             40,
			expectedResults:   4,
			expectedCost:      10,
			expectedPurchases: 4,
		},
		{
			name: "Leads somam os dois tipos de lead",
			actions: []Action{
				{ActionType: "lead", Value: "1"},
				{ActionType: "onsite_conversion.lead_grouped", Value: "3"},
				{ActionType: "link_click", Value: "100"},
			},
			spend:           20,
			expectedResults: 4,
			expectedCost:    5,
			expectedLeads:   4,
		},
		{
			name: "Tudo zerado - custo por resultado é zero e não NaN",
			actions: []Action{
				{ActionType: "lead", Value: "0"},
			},
			spend:           100,
			expectedResults: 0,
			expectedCost:    0,
		},
		{
			name:            "Sem actions",
			actions:         nil,
			spend:           0,
			expectedResults: 0,
			expectedCost:    0,
		},
		{
			name: "Valores inválidos contam como zero",
			actions: []Action{
				{ActionType: "lead", Value: ""},
				{ActionType: "lead", Value: "abc"},
				{ActionType: "purchase", Value: "1"},
			},
			spend:             9,
			expectedResults:   1,
			expectedCost:      9,
			expectedPurchases: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizeResults(tt.actions, tt.spend)

			assert.Equal(t, tt.expectedResults, got.Results)
			assert.Equal(t, tt.expectedCost, got.CostPerResult)
			assert.Equal(t, tt.expectedLeads, got.Leads)
			assert.Equal(t, tt.expectedMessages, got.Messages)
			assert.Equal(t, tt.expectedPurchases, got.Purchases)
			assert.False(t, math.IsNaN(got.CostPerResult))
			assert.False(t, math.IsInf(got.CostPerResult, 0))
		})
	}
}

func TestCostPerResult(t *testing.T) {
	assert.Equal(t, 0.0, CostPerResult(10, 0))
	assert.Equal(t, 0.0, CostPerResult(10, -1))
	assert.Equal(t, 2.5, CostPerResult(10, 4))
}

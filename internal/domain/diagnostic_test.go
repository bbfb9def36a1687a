package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildHistogram(t *testing.T) {
	tests := []struct {
		name     string
		items    []DiagnosticItem
		expected []HistogramBin
	}{
		{
			name: "Distribui nas faixas e remove as vazias",
			items: []DiagnosticItem{
				{ID: "1", CPL: 5},
				{ID: "2", CPL: 10},
				{ID: "3", CPL: 10.01},
				{ID: "4", CPL: 41},
				{ID: "5", CPL: 99},
			},
			expected: []HistogramBin{
				{Range: "≤ R$10", Count: 2},
				{Range: "R$10–20", Count: 1},
				{Range: "> R$40", Count: 2},
			},
		},
		{
			name: "Itens sem CPL são ignorados",
			items: []DiagnosticItem{
				{ID: "1", CPL: 0},
				{ID: "2", CPL: -3},
				{ID: "3", CPL: 35},
			},
			expected: []HistogramBin{
				{Range: "R$30–40", Count: 1},
			},
		},
		{
			name:     "Sem itens",
			items:    nil,
			expected: []HistogramBin{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildHistogram(tt.items))
		})
	}
}

func TestParseDiagnosticLevel(t *testing.T) {
	level, err := ParseDiagnosticLevel("")
	assert.NoError(t, err)
	assert.Equal(t, DiagnosticLevelCampaign, level)

	level, err = ParseDiagnosticLevel("ad")
	assert.NoError(t, err)
	assert.Equal(t, DiagnosticLevelAd, level)

	_, err = ParseDiagnosticLevel("adset")
	assert.ErrorIs(t, err, ErrInvalidDiagnosticLevel)
}

package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

func TestBreakdownLabel(t *testing.T) {
	tests := []struct {
		name      string
		dimension domain.BreakdownDimension
		row       metadomain.InsightRow
		expected  string
	}{
		{name: "Feed do Facebook", dimension: domain.BreakdownPlacement, row: metadomain.InsightRow{PublisherPlatform: "facebook", PlatformPosition: "feed"}, expected: "Facebook Feed"},
		{name: "Stories do Instagram", dimension: domain.BreakdownPlacement, row: metadomain.InsightRow{PublisherPlatform: "instagram", PlatformPosition: "story"}, expected: "Instagram Stories"},
		{name: "Posição desconhecida cai no padrão da plataforma", dimension: domain.BreakdownPlacement, row: metadomain.InsightRow{PublisherPlatform: "instagram", PlatformPosition: "ig_search"}, expected: "Instagram"},
		{name: "Audience Network", dimension: domain.BreakdownPlacement, row: metadomain.InsightRow{PublisherPlatform: "audience_network", PlatformPosition: "classic"}, expected: "Audience Network"},
		{name: "Plataforma desconhecida", dimension: domain.BreakdownPlacement, row: metadomain.InsightRow{PublisherPlatform: "threads", PlatformPosition: "feed"}, expected: "threads / feed"},
		{name: "Dispositivo conhecido", dimension: domain.BreakdownDevice, row: metadomain.InsightRow{ImpressionDevice: "android_smartphone"}, expected: "Android"},
		{name: "Dispositivo desconhecido mantém o valor", dimension: domain.BreakdownDevice, row: metadomain.InsightRow{ImpressionDevice: "wearable"}, expected: "wearable"},
		{name: "Dispositivo ausente", dimension: domain.BreakdownDevice, row: metadomain.InsightRow{}, expected: "unknown"},
		{name: "Idade", dimension: domain.BreakdownAge, row: metadomain.InsightRow{Age: "25-34"}, expected: "25-34"},
		{name: "Idade ausente", dimension: domain.BreakdownAge, row: metadomain.InsightRow{}, expected: "Unknown"},
		{name: "Gênero masculino", dimension: domain.BreakdownGender, row: metadomain.InsightRow{Gender: "male"}, expected: "Masculino"},
		{name: "Gênero feminino", dimension: domain.BreakdownGender, row: metadomain.InsightRow{Gender: "female"}, expected: "Feminino"},
		{name: "Gênero desconhecido", dimension: domain.BreakdownGender, row: metadomain.InsightRow{Gender: "unknown"}, expected: "Desconhecido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, breakdownLabel(tt.dimension, &tt.row))
		})
	}
}

func TestParseBudget(t *testing.T) {
	assert.Nil(t, parseBudget(""))

	budget := parseBudget("15050")
	if assert.NotNil(t, budget) {
		assert.Equal(t, 150.5, *budget)
	}
}

package meta

import (
	metadomain "github.com/vfg2006/ads-insights-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-api/internal/domain"
)

const defaultPlacement = "default"

var placementLabels = map[string]map[string]string{
	"facebook": {
		"feed":              "Facebook Feed",
		"right_hand_column": "Coluna Direita",
		"marketplace":       "Marketplace",
		"video_feeds":       "Facebook Vídeo",
		"groups_feed":       "Grupos",
		"story":             "Facebook Stories",
		"search":            "Pesquisa",
		"instream_video":    "In-stream Vídeo",
		"suggested_video":   "Vídeo Sugerido",
		"instant_article":   "Instant Article",
		defaultPlacement:    "Facebook",
	},
	"instagram": {
		"stream":         "Instagram Feed",
		"story":          "Instagram Stories",
		"reels":          "Instagram Reels",
		"explore":        "Explore",
		"explore_home":   "Explore Home",
		"profile_feed":   "Perfil Instagram",
		defaultPlacement: "Instagram",
	},
	"audience_network": {defaultPlacement: "Audience Network"},
	"messenger":        {defaultPlacement: "Messenger"},
}

var deviceLabels = map[string]string{
	"mobile_app":         "Mobile App",
	"desktop":            "Desktop",
	"iphone":             "iPhone",
	"ipad":               "iPad",
	"android_smartphone": "Android",
	"android_tablet":     "Tablet Android",
	"connected_tv":       "Smart TV",
}

// breakdownDimensions é o parâmetro breakdowns enviado para cada dimensão
var breakdownDimensions = map[domain.BreakdownDimension][]string{
	domain.BreakdownPlacement: {"publisher_platform", "platform_position"},
	domain.BreakdownDevice:    {"impression_device"},
	domain.BreakdownAge:       {"age"},
	domain.BreakdownGender:    {"gender"},
}

func placementLabel(platform, position string) string {
	positions, ok := placementLabels[platform]
	if !ok {
		return platform + " / " + position
	}

	if label, ok := positions[position]; ok {
		return label
	}

	return positions[defaultPlacement]
}

func deviceLabel(device string) string {
	if device == "" {
		device = "unknown"
	}

	if label, ok := deviceLabels[device]; ok {
		return label
	}

	return device
}

func genderLabel(gender string) string {
	switch gender {
	case "male":
		return "Masculino"
	case "female":
		return "Feminino"
	default:
		return "Desconhecido"
	}
}

func ageLabel(age string) string {
	if age == "" {
		return "Unknown"
	}

	return age
}

func breakdownLabel(dimension domain.BreakdownDimension, row *metadomain.InsightRow) string {
	switch dimension {
	case domain.BreakdownPlacement:
		return placementLabel(row.PublisherPlatform, row.PlatformPosition)
	case domain.BreakdownDevice:
		return deviceLabel(row.ImpressionDevice)
	case domain.BreakdownAge:
		return ageLabel(row.Age)
	default:
		return genderLabel(row.Gender)
	}
}

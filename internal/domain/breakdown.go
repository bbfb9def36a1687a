package domain

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidBreakdownDimension = errors.New("invalid breakdown dimension")

type BreakdownDimension string

const (
	BreakdownPlacement BreakdownDimension = "placement"
	BreakdownDevice    BreakdownDimension = "device"
	BreakdownAge       BreakdownDimension = "age"
	BreakdownGender    BreakdownDimension = "gender"
)

var BreakdownDimensions = []BreakdownDimension{
	BreakdownPlacement,
	BreakdownDevice,
	BreakdownAge,
	BreakdownGender,
}

func ParseBreakdownDimension(value string) (BreakdownDimension, error) {
	dimension := BreakdownDimension(strings.ToLower(strings.TrimSpace(value)))
	switch dimension {
	case BreakdownPlacement, BreakdownDevice, BreakdownAge, BreakdownGender:
		return dimension, nil
	default:
		return "", ErrInvalidBreakdownDimension
	}
}

type BreakdownRow struct {
	Label   string  `json:"label"`
	Spend   float64 `json:"spend"`
	Results int64   `json:"results"`
	CPL     float64 `json:"cpl"`
}

// GroupBreakdownByLabel junta linhas com o mesmo rótulo (vários platform_position
// viram "Instagram", por exemplo), recalcula o CPL e ordena por gasto decrescente.
func GroupBreakdownByLabel(rows []BreakdownRow) []BreakdownRow {
	index := make(map[string]int, len(rows))
	grouped := make([]BreakdownRow, 0, len(rows))

	for _, row := range rows {
		if i, ok := index[row.Label]; ok {
			grouped[i].Spend += row.Spend
			grouped[i].Results += row.Results
			continue
		}

		index[row.Label] = len(grouped)
		grouped = append(grouped, BreakdownRow{Label: row.Label, Spend: row.Spend, Results: row.Results})
	}

	for i := range grouped {
		grouped[i].CPL = CostPerResult(grouped[i].Spend, grouped[i].Results)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Spend > grouped[j].Spend
	})

	return grouped
}

package domain

import (
	"time"

	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

type PeriodPreset string

const (
	PeriodLast7Days   PeriodPreset = "7d"
	PeriodLast14Days  PeriodPreset = "14d"
	PeriodLast30Days  PeriodPreset = "30d"
	PeriodLast90Days  PeriodPreset = "90d"
	PeriodMonthToDate PeriodPreset = "mtd"

	DefaultPeriodPreset = PeriodLast30Days
)

type PeriodOption struct {
	Value PeriodPreset `json:"value"`
	Label string       `json:"label"`
}

var PeriodOptions = []PeriodOption{
	{Value: PeriodLast7Days, Label: "Últimos 7 dias"},
	{Value: PeriodLast14Days, Label: "Últimos 14 dias"},
	{Value: PeriodLast30Days, Label: "Últimos 30 dias"},
	{Value: PeriodLast90Days, Label: "Últimos 90 dias"},
	{Value: PeriodMonthToDate, Label: "1º do mês até ontem"},
}

// PeriodFromPreset converte um preset em datas relativas a now.
// Os presets de N dias vão de hoje-N até hoje; mtd vai do dia 1 até ontem.
func PeriodFromPreset(preset PeriodPreset, now time.Time) (Period, error) {
	today := utils.StartOfDay(now)

	switch preset {
	case PeriodLast7Days:
		return NewPeriod(today.AddDate(0, 0, -7), today)
	case PeriodLast14Days:
		return NewPeriod(today.AddDate(0, 0, -14), today)
	case PeriodLast30Days:
		return NewPeriod(today.AddDate(0, 0, -30), today)
	case PeriodLast90Days:
		return NewPeriod(today.AddDate(0, 0, -90), today)
	case PeriodMonthToDate:
		from := utils.StartOfMonth(today)
		to := today.AddDate(0, 0, -1)
		// No dia 1 o "até ontem" cairia no mês anterior
		if to.Before(from) {
			to = from
		}
		return NewPeriod(from, to)
	default:
		return Period{}, ErrInvalidPeriodPreset
	}
}

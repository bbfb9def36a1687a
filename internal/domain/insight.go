package domain

import (
	"errors"
	"time"

	"github.com/vfg2006/ads-insights-api/pkg/utils"
)

var (
	ErrInvalidPeriod       = errors.New("invalid period")
	ErrInvalidPeriodPreset = errors.New("invalid period preset")
)

// Period é o intervalo de datas (inclusivo) de uma consulta de insights
type Period struct {
	From time.Time
	To   time.Time
}

// NewPeriod valida e normaliza o intervalo para datas sem horário
func NewPeriod(from, to time.Time) (Period, error) {
	from = utils.StartOfDay(from)
	to = utils.StartOfDay(to)

	if from.IsZero() || to.IsZero() || to.Before(from) {
		return Period{}, ErrInvalidPeriod
	}

	return Period{From: from, To: to}, nil
}

// ParsePeriod cria um Period a partir de datas YYYY-MM-DD
func ParsePeriod(from, to string) (Period, error) {
	fromDate, err := utils.ParseDate(from)
	if err != nil {
		return Period{}, err
	}

	toDate, err := utils.ParseDate(to)
	if err != nil {
		return Period{}, err
	}

	return NewPeriod(fromDate, toDate)
}

func (p Period) Since() string {
	return utils.FormatDate(p.From)
}

func (p Period) Until() string {
	return utils.FormatDate(p.To)
}

// String é usado como parte da chave do memo de breakdowns e nos logs
func (p Period) String() string {
	return p.Since() + ".." + p.Until()
}

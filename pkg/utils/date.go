package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("date is required")

// ParseDate interpreta uma data no formato YYYY-MM-DD no fuso local do servidor
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}

	return time.ParseInLocation(time.DateOnly, dateStr, time.Local)
}

// FormatDate formata a data no padrão esperado pela API da Meta e pelas colunas DATE
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// StartOfDay retorna a meia-noite do dia de t, no fuso de t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth retorna o primeiro dia do mês de t à meia-noite
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

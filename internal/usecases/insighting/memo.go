package insighting

import (
	"sync"

	"github.com/vfg2006/ads-insights-api/internal/domain"
)

// BreakdownMemo guarda os breakdowns já buscados para uma mesma conta e período.
// Pertence a quem o cria (normalmente uma requisição) e é zerado sempre que a
// conta ou o período mudam.
type BreakdownMemo struct {
	mu   sync.Mutex
	key  string
	rows map[domain.BreakdownDimension][]domain.BreakdownRow
}

func NewBreakdownMemo() *BreakdownMemo {
	return &BreakdownMemo{rows: make(map[domain.BreakdownDimension][]domain.BreakdownRow)}
}

// Do devolve o valor memorizado ou chama fetch. Erros não são memorizados.
func (m *BreakdownMemo) Do(
	accountID string,
	period domain.Period,
	dimension domain.BreakdownDimension,
	fetch func() ([]domain.BreakdownRow, error),
) ([]domain.BreakdownRow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := accountID + "|" + period.String()
	if key != m.key {
		m.key = key
		m.rows = make(map[domain.BreakdownDimension][]domain.BreakdownRow)
	}

	if rows, ok := m.rows[dimension]; ok {
		return rows, nil
	}

	rows, err := fetch()
	if err != nil {
		return nil, err
	}

	m.rows[dimension] = rows

	return rows, nil
}

// Len é a quantidade de dimensões memorizadas para a chave atual
func (m *BreakdownMemo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.rows)
}

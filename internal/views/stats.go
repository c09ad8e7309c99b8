package views

import "farmacia/internal/models"

const previewSize = 3

type Stats struct {
	TotalMedicamentos int
	StockTotal        int
}

// StatsFor counts the nested medications and sums their stock. A nil list
// gives zero stats.
func StatsFor(medicamentos []models.MedicamentoResumen) Stats {
	s := Stats{TotalMedicamentos: len(medicamentos)}
	for _, m := range medicamentos {
		s.StockTotal += m.Stock
	}
	return s
}

// Totals are the page-level cards: number of rows, medications and stock.
type Totals struct {
	Grupos       int
	Medicamentos int
	Stock        int
}

func (t *Totals) add(s Stats) {
	t.Grupos++
	t.Medicamentos += s.TotalMedicamentos
	t.Stock += s.StockTotal
}

// preview returns the first names and how many were left out.
func preview(medicamentos []models.MedicamentoResumen) ([]string, int) {
	n := len(medicamentos)
	if n > previewSize {
		n = previewSize
	}
	names := make([]string, 0, n)
	for _, m := range medicamentos[:n] {
		names = append(names, m.DescripcionMed)
	}
	return names, len(medicamentos) - n
}

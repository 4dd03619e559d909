package ledger

import (
	"github.com/shopspring/decimal"
	"slices"
)

const (
	KindDeposit    = "deposit"
	KindWithdrawal = "withdrawal"
)

type Row struct {
	Index  int
	Kind   string
	Amount decimal.Decimal
}

// View returns a copy of movements, ascending when sorted is set. The stored
// list is never reordered.
func View(movements []decimal.Decimal, sorted bool) []decimal.Decimal {
	result := slices.Clone(movements)

	if sorted {
		slices.SortStableFunc(result, func(a, b decimal.Decimal) int {
			return a.Cmp(b)
		})
	}

	return result
}

// Rows numbers the view from 1 and labels each entry.
func Rows(movements []decimal.Decimal, sorted bool) []Row {
	view := View(movements, sorted)

	rows := make([]Row, len(view))
	for i, m := range view {
		kind := KindWithdrawal
		if isDeposit(m) {
			kind = KindDeposit
		}

		rows[i] = Row{
			Index:  i + 1,
			Kind:   kind,
			Amount: m,
		}
	}

	return rows
}

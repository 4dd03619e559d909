package ledger

import (
	"bankist/internal/models/accounts"
	"github.com/shopspring/decimal"
)

const (
	ActivityVeryActive = "very active"
	ActivityActive     = "active"
	ActivityModerate   = "moderate"
	ActivityInactive   = "inactive"
)

var LargeDeposit = decimal.NewFromInt(1000)

type BankStats struct {
	OverallBalance     decimal.Decimal
	DepositSum         decimal.Decimal
	WithdrawalSum      decimal.Decimal
	LargeDepositsCount int
	ByActivity         map[string][]string
	ByType             map[string][]string
}

func Stats(accs []accounts.Account) BankStats {
	all := allMovements(accs)

	stats := BankStats{
		OverallBalance: sum(all),
		DepositSum:     sum(filter(all, isDeposit)),
		WithdrawalSum:  sum(filter(all, isWithdrawal)),
		ByActivity:     make(map[string][]string),
		ByType:         make(map[string][]string),
	}

	for _, m := range all {
		if m.GreaterThanOrEqual(LargeDeposit) {
			stats.LargeDepositsCount++
		}
	}

	for _, a := range accs {
		activity := Activity(len(a.Movements))
		stats.ByActivity[activity] = append(stats.ByActivity[activity], a.Username)
		stats.ByType[a.Type] = append(stats.ByType[a.Type], a.Username)
	}

	return stats
}

func Activity(movementCount int) string {
	switch {
	case movementCount >= 8:
		return ActivityVeryActive
	case movementCount >= 4:
		return ActivityActive
	case movementCount >= 1:
		return ActivityModerate
	default:
		return ActivityInactive
	}
}

func allMovements(accs []accounts.Account) []decimal.Decimal {
	var result []decimal.Decimal
	for _, a := range accs {
		result = append(result, a.Movements...)
	}

	return result
}

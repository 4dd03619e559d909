// Package ledger computes account figures from movements. Nothing here is
// cached: every figure is derived from the movement list it is given.
package ledger

import (
	"bankist/internal/models/accounts"
	"github.com/shopspring/decimal"
	"slices"
)

var (
	hundred     = decimal.NewFromInt(100)
	interestMin = decimal.NewFromInt(1)
	loanShare   = decimal.New(1, -1)
)

type Summary struct {
	Balance          decimal.Decimal
	TotalDeposits    decimal.Decimal
	TotalWithdrawals decimal.Decimal
	TotalInterest    decimal.Decimal
}

func Balance(movements []decimal.Decimal) decimal.Decimal {
	return sum(movements)
}

func TotalDeposits(movements []decimal.Decimal) decimal.Decimal {
	return sum(filter(movements, isDeposit))
}

func TotalWithdrawals(movements []decimal.Decimal) decimal.Decimal {
	return sum(filter(movements, isWithdrawal)).Abs()
}

// TotalInterest credits interest per deposit and skips any deposit whose
// interest is below one currency unit.
func TotalInterest(movements []decimal.Decimal, interestRate decimal.Decimal) decimal.Decimal {
	deposits := filter(movements, isDeposit)

	interests := make([]decimal.Decimal, len(deposits))
	for i, deposit := range deposits {
		interests[i] = deposit.Mul(interestRate).Div(hundred)
	}

	return sum(filter(interests, func(v decimal.Decimal) bool {
		return v.GreaterThanOrEqual(interestMin)
	}))
}

// Insights are the extra figures shown under the movement list.
type Insights struct {
	Deposits         int
	Withdrawals      int
	Largest          decimal.Decimal
	LastLargeAgo     int
	HasLargeMovement bool
}

var LargeMovement = decimal.NewFromInt(1000)

func Inspect(movements []decimal.Decimal) Insights {
	deposits, withdrawals := Split(movements)
	largest, _ := Max(movements)
	ago, ok := LastLargeMovement(movements, LargeMovement)

	return Insights{
		Deposits:         len(deposits),
		Withdrawals:      len(withdrawals),
		Largest:          largest,
		LastLargeAgo:     ago,
		HasLargeMovement: ok,
	}
}

func Summarize(account accounts.Account) Summary {
	return Summary{
		Balance:          Balance(account.Movements),
		TotalDeposits:    TotalDeposits(account.Movements),
		TotalWithdrawals: TotalWithdrawals(account.Movements),
		TotalInterest:    TotalInterest(account.Movements, account.InterestRate),
	}
}

// QualifiesForLoan reports whether some movement is at least a tenth of amount.
func QualifiesForLoan(movements []decimal.Decimal, amount decimal.Decimal) bool {
	threshold := amount.Mul(loanShare)

	return slices.ContainsFunc(movements, func(m decimal.Decimal) bool {
		return m.GreaterThanOrEqual(threshold)
	})
}

// Split groups movements into deposits and withdrawals, keeping their order.
func Split(movements []decimal.Decimal) (deposits, withdrawals []decimal.Decimal) {
	return filter(movements, isDeposit), filter(movements, func(m decimal.Decimal) bool {
		return !isDeposit(m)
	})
}

func Max(movements []decimal.Decimal) (decimal.Decimal, bool) {
	if len(movements) == 0 {
		return decimal.Zero, false
	}

	return decimal.Max(movements[0], movements[1:]...), true
}

// LastLargeMovement returns how many movements ago the latest movement with an
// absolute value above threshold happened. 1 means the most recent one.
func LastLargeMovement(movements []decimal.Decimal, threshold decimal.Decimal) (int, bool) {
	for i := len(movements) - 1; i >= 0; i-- {
		if movements[i].Abs().GreaterThan(threshold) {
			return len(movements) - i, true
		}
	}

	return 0, false
}

func isDeposit(m decimal.Decimal) bool {
	return m.IsPositive()
}

func isWithdrawal(m decimal.Decimal) bool {
	return m.IsNegative()
}

func filter(values []decimal.Decimal, keep func(decimal.Decimal) bool) []decimal.Decimal {
	result := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		if keep(v) {
			result = append(result, v)
		}
	}

	return result
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}

	return total
}

package accounts

import (
	"github.com/shopspring/decimal"
)

type seedAccount struct {
	owner        string
	movements    []int64
	interestRate string
	pin          int
	accountType  string
}

var seedAccounts = []seedAccount{
	{
		owner:        "Jonas Schmedtmann",
		movements:    []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
		interestRate: "1.2",
		pin:          1111,
		accountType:  "Premium",
	},
	{
		owner:        "Jessica Davis",
		movements:    []int64{5000, 3400, -150, -790, -3210, -1000, 8500, -30},
		interestRate: "1.5",
		pin:          2222,
		accountType:  "Basic",
	},
	{
		owner:        "Steven Thomas Williams",
		movements:    []int64{200, -200, 340, -300, -20, 50, 400, -460},
		interestRate: "0.7",
		pin:          3333,
		accountType:  "Premium",
	},
	{
		owner:        "Sarah Smith",
		movements:    []int64{430, 1000, 700, 50, 90},
		interestRate: "1",
		pin:          4444,
		accountType:  "Standard",
	},
}

// Seed returns fresh copies of the sample accounts the bank starts with.
func Seed() []*Account {
	result := make([]*Account, 0, len(seedAccounts))

	for _, s := range seedAccounts {
		result = append(result, NewAccount(s.owner, Amounts(s.movements...), decimal.RequireFromString(s.interestRate), s.pin, s.accountType))
	}

	return result
}

func Amounts(values ...int64) []decimal.Decimal {
	result := make([]decimal.Decimal, len(values))
	for i, v := range values {
		result[i] = decimal.NewFromInt(v)
	}

	return result
}

package accounts

import (
	"github.com/beevik/guid"
	"github.com/shopspring/decimal"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	maxPinInputLen = 32
	maxPinExponent = 10
)

type Account struct {
	ID           string
	Owner        string
	Username     string
	Movements    []decimal.Decimal
	InterestRate decimal.Decimal
	Pin          int
	Type         string
}

func NewAccount(owner string, movements []decimal.Decimal, interestRate decimal.Decimal, pin int, accountType string) *Account {
	account := &Account{
		ID:           guid.NewString(),
		Owner:        owner,
		Username:     DeriveUsername(owner),
		Movements:    slices.Clone(movements),
		InterestRate: interestRate,
		Pin:          pin,
		Type:         accountType,
	}

	return account
}

// DeriveUsername lowercases owner and joins the first letter of every word.
func DeriveUsername(owner string) string {
	var sb strings.Builder

	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		sb.WriteRune(r)
	}

	return sb.String()
}

var maxPin = decimal.NewFromInt(math.MaxInt32)

// ParsePin coerces typed PIN input the way a numeric form field does:
// surrounding whitespace is ignored and any integral number is accepted,
// so "1111", " 1111 ", "1111.0" and "1.111e3" all read as 1111.
func ParsePin(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" || len(input) > maxPinInputLen {
		return 0, false
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return 0, false
	}

	if d.Exponent() > maxPinExponent || d.Exponent() < -maxPinExponent {
		return 0, false
	}

	if !d.IsInteger() || d.Abs().GreaterThan(maxPin) {
		return 0, false
	}

	return int(d.IntPart()), true
}

func (a *Account) Clone() Account {
	cp := *a
	cp.Movements = slices.Clone(a.Movements)

	return cp
}

// FirstName is used for the welcome line after login.
func (a *Account) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(a.Owner), " ")

	return first
}

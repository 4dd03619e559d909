package money

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/shopspring/decimal"
	"strings"
)

const (
	// Scale is the number of fractional digits an amount may carry.
	Scale        = 2
	maxInputLen  = 32
	maxIntDigits = 15
)

var maxAmount = decimal.New(1, maxIntDigits)

type Money struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func FromInt(v int64) Money {
	return Money{Decimal: decimal.NewFromInt(v)}
}

// Parse coerces user input into an amount. Surrounding whitespace is ignored
// and an empty string is rejected. Amounts are limited to cents and to
// maxIntDigits integer digits.
func Parse(input string) (Money, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Money{}, errors.New("empty amount")
	}

	if len(input) > maxInputLen {
		return Money{}, fmt.Errorf("amount is too long: %d characters", len(input))
	}

	d, err := decimal.NewFromString(input)
	if err != nil {
		return Money{}, fmt.Errorf("unable parse amount %q: %w", input, err)
	}

	if err := Validate(d); err != nil {
		return Money{}, fmt.Errorf("amount %q: %w", input, err)
	}

	return Money{Decimal: d}, nil
}

// Validate rejects amounts with sub-cent digits or too many integer digits.
func Validate(d decimal.Decimal) error {
	// exponent checks come first: rescaling an extreme exponent is what is expensive
	if d.Exponent() > maxIntDigits {
		return errors.New("too large")
	}

	if d.Exponent() < -maxIntDigits-Scale || !d.Equal(d.Round(Scale)) {
		return fmt.Errorf("more than %d fractional digits", Scale)
	}

	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return errors.New("too large")
	}

	return nil
}

func (v Money) MarshalJSON() ([]byte, error) {
	return []byte(v.Decimal.String()), nil
}

func (v *Money) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)

	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	m, err := Parse(string(data))
	if err != nil {
		return err
	}

	*v = m

	return nil
}

// Euro renders an amount the way the account screen shows it, e.g. "1300€".
func (v Money) Euro() string {
	return v.Decimal.String() + "€"
}

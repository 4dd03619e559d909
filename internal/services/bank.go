package bank

import (
	"bankist/internal/errs"
	"bankist/internal/ledger"
	"bankist/internal/models/accounts"
	"bankist/internal/models/money"
	"bankist/internal/store"
	"context"
	"fmt"
	"github.com/shopspring/decimal"
)

// State is what the account screen is rebuilt from after every operation.
type State struct {
	Account  accounts.Account
	Summary  ledger.Summary
	Insights ledger.Insights
}

type Bank struct {
	store store.Store
}

func NewBank(s store.Store) *Bank {
	return &Bank{
		store: s,
	}
}

func checkAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}

	if err := money.Validate(amount); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidAmount, err)
	}

	return nil
}

func NewState(account accounts.Account) State {
	return State{
		Account:  account,
		Summary:  ledger.Summarize(account),
		Insights: ledger.Inspect(account.Movements),
	}
}

func (b *Bank) Summary(ctx context.Context, username string) (State, error) {
	account, err := b.store.GetAccountByUsername(ctx, username)
	if err != nil {
		return State{}, err
	}

	return NewState(account), nil
}

func (b *Bank) Movements(ctx context.Context, username string, sorted bool) ([]ledger.Row, error) {
	account, err := b.store.GetAccountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return ledger.Rows(account.Movements, sorted), nil
}

func (b *Bank) Stats(ctx context.Context) (ledger.BankStats, error) {
	list, err := b.store.ListAccounts(ctx)
	if err != nil {
		return ledger.BankStats{}, fmt.Errorf("unable list accounts: %w", err)
	}

	return ledger.Stats(list), nil
}

// Transfer moves amount from sender to receiver. Both movements are appended
// together or not at all.
func (b *Bank) Transfer(ctx context.Context, sender, receiver string, amount decimal.Decimal) (State, error) {
	if err := checkAmount(amount); err != nil {
		return State{}, err
	}

	if _, err := b.store.GetAccountByUsername(ctx, receiver); err != nil {
		return State{}, err
	}

	if receiver == sender {
		return State{}, errs.ErrSelfTransfer
	}

	var result accounts.Account

	err := b.store.UpdateAccounts(ctx, []string{sender, receiver}, func(accs []*accounts.Account) error {
		from, to := accs[0], accs[1]

		if ledger.Balance(from.Movements).LessThan(amount) {
			return errs.ErrInsufficientFunds
		}

		from.Movements = append(from.Movements, amount.Neg())
		to.Movements = append(to.Movements, amount)

		result = from.Clone()

		return nil
	})
	if err != nil {
		return State{}, err
	}

	return NewState(result), nil
}

func (b *Bank) RequestLoan(ctx context.Context, username string, amount decimal.Decimal) (State, error) {
	if err := checkAmount(amount); err != nil {
		return State{}, err
	}

	var result accounts.Account

	err := b.store.UpdateAccounts(ctx, []string{username}, func(accs []*accounts.Account) error {
		account := accs[0]

		if !ledger.QualifiesForLoan(account.Movements, amount) {
			return errs.ErrLoanRejected
		}

		account.Movements = append(account.Movements, amount)

		result = account.Clone()

		return nil
	})
	if err != nil {
		return State{}, err
	}

	return NewState(result), nil
}

// CloseAccount removes current from the registry when the confirmation
// matches it. A true result means the caller must clear its session.
func (b *Bank) CloseAccount(ctx context.Context, current, usernameInput, pinInput string) (bool, error) {
	if usernameInput != current {
		return false, errs.ErrCredentialMismatch
	}

	pin, ok := accounts.ParsePin(pinInput)
	if !ok {
		return false, errs.ErrCredentialMismatch
	}

	err := b.store.RemoveAccount(ctx, current, func(account *accounts.Account) error {
		if account.Pin != pin {
			return errs.ErrCredentialMismatch
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// ParseAmount coerces a typed amount. Anything that is not a number is an
// invalid amount.
func ParseAmount(input string) (decimal.Decimal, error) {
	m, err := money.Parse(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", errs.ErrInvalidAmount, err)
	}

	return m.Decimal, nil
}

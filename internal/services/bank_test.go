package bank

import (
	"bankist/internal/errs"
	"bankist/internal/ledger"
	"bankist/internal/models/accounts"
	"bankist/internal/store/memory"
	"context"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func newBank(t *testing.T) (*Bank, *memory.Store) {
	t.Helper()

	s, err := memory.NewStore(accounts.Seed()...)
	require.NoError(t, err)

	return NewBank(s), s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func movementsOf(t *testing.T, s *memory.Store, username string) []decimal.Decimal {
	t.Helper()

	account, err := s.GetAccountByUsername(context.Background(), username)
	require.NoError(t, err)

	return account.Movements
}

func TestBank_Transfer(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		receiver string
		amount   string
		err      error
		balance  string
	}{
		{
			name:     "1 positive",
			sender:   "js",
			receiver: "jd",
			amount:   "100",
			balance:  "3740",
		},
		{
			name:     "2 whole balance",
			sender:   "js",
			receiver: "jd",
			amount:   "3840",
			balance:  "0",
		},
		{
			name:     "3 zero amount",
			sender:   "js",
			receiver: "jd",
			amount:   "0",
			err:      errs.ErrInvalidAmount,
		},
		{
			name:     "4 negative amount",
			sender:   "js",
			receiver: "jd",
			amount:   "-50",
			err:      errs.ErrInvalidAmount,
		},
		{
			name:     "5 unknown receiver",
			sender:   "js",
			receiver: "xyz",
			amount:   "10",
			err:      errs.ErrAccountNotFound,
		},
		{
			name:     "6 self transfer",
			sender:   "js",
			receiver: "js",
			amount:   "10",
			err:      errs.ErrSelfTransfer,
		},
		{
			name:     "7 insufficient funds",
			sender:   "js",
			receiver: "jd",
			amount:   "5000",
			err:      errs.ErrInsufficientFunds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, s := newBank(t)
			ctx := context.Background()

			state, err := b.Transfer(ctx, tt.sender, tt.receiver, dec(tt.amount))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Equal(t, accounts.Amounts(200, 450, -400, 3000, -650, -130, 70, 1300), movementsOf(t, s, "js"))
				require.Equal(t, accounts.Amounts(5000, 3400, -150, -790, -3210, -1000, 8500, -30), movementsOf(t, s, "jd"))
				return
			}

			require.NoError(t, err)
			require.True(t, dec(tt.balance).Equal(state.Summary.Balance))

			sender := movementsOf(t, s, tt.sender)
			receiver := movementsOf(t, s, tt.receiver)
			require.True(t, sender[len(sender)-1].Equal(dec(tt.amount).Neg()))
			require.True(t, receiver[len(receiver)-1].Equal(dec(tt.amount)))
		})
	}
}

func TestBank_Transfer_conservesTotal(t *testing.T) {
	b, s := newBank(t)
	ctx := context.Background()

	before, err := b.Stats(ctx)
	require.NoError(t, err)

	_, err = b.Transfer(ctx, "jd", "ss", dec("1500"))
	require.NoError(t, err)

	after, err := b.Stats(ctx)
	require.NoError(t, err)
	require.True(t, before.OverallBalance.Equal(after.OverallBalance))
	require.Len(t, movementsOf(t, s, "ss"), 6)
}

func TestBank_Transfer_concurrentOpposite(t *testing.T) {
	b, s := newBank(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			_, _ = b.Transfer(ctx, "js", "jd", dec("10"))
		}()

		go func() {
			defer wg.Done()
			_, _ = b.Transfer(ctx, "jd", "js", dec("10"))
		}()
	}
	wg.Wait()

	js := ledger.Balance(movementsOf(t, s, "js"))
	jd := ledger.Balance(movementsOf(t, s, "jd"))
	require.True(t, js.Add(jd).Equal(dec("15560")))
	require.True(t, js.Equal(dec("3840")))
}

func TestBank_RequestLoan(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		err    error
	}{
		{
			name:   "1 positive",
			amount: "3000",
		},
		{
			name:   "2 needs a 400 deposit",
			amount: "4000",
		},
		{
			name:   "3 rejected",
			amount: "4010",
			err:    errs.ErrLoanRejected,
		},
		{
			name:   "4 zero amount",
			amount: "0",
			err:    errs.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, s := newBank(t)

			state, err := b.RequestLoan(context.Background(), "stw", dec(tt.amount))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Equal(t, accounts.Amounts(200, -200, 340, -300, -20, 50, 400, -460), movementsOf(t, s, "stw"))
				return
			}

			require.NoError(t, err)

			movements := movementsOf(t, s, "stw")
			require.Len(t, movements, 9)
			require.True(t, movements[8].Equal(dec(tt.amount)))
			require.True(t, state.Summary.Balance.Equal(dec("10").Add(dec(tt.amount))))
		})
	}
}

func TestBank_RequestLoan_unknownAccount(t *testing.T) {
	b, _ := newBank(t)

	_, err := b.RequestLoan(context.Background(), "zz", dec("100"))
	require.ErrorIs(t, err, errs.ErrAccountNotFound)
}

func TestBank_CloseAccount(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		usernameInput string
		pinInput      string
		err           error
	}{
		{
			name:          "1 positive",
			current:       "jd",
			usernameInput: "jd",
			pinInput:      "2222",
		},
		{
			name:          "2 pin with spaces",
			current:       "jd",
			usernameInput: "jd",
			pinInput:      " 2222 ",
		},
		{
			name:          "3 wrong pin",
			current:       "jd",
			usernameInput: "jd",
			pinInput:      "1111",
			err:           errs.ErrCredentialMismatch,
		},
		{
			name:          "4 other username",
			current:       "jd",
			usernameInput: "js",
			pinInput:      "1111",
			err:           errs.ErrCredentialMismatch,
		},
		{
			name:          "5 pin not a number",
			current:       "jd",
			usernameInput: "jd",
			pinInput:      "abcd",
			err:           errs.ErrCredentialMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, s := newBank(t)
			ctx := context.Background()

			ended, err := b.CloseAccount(ctx, tt.current, tt.usernameInput, tt.pinInput)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.False(t, ended)

				list, _ := s.ListAccounts(ctx)
				require.Len(t, list, 4)
				return
			}

			require.NoError(t, err)
			require.True(t, ended)

			_, err = s.GetAccountByUsername(ctx, tt.current)
			require.ErrorIs(t, err, errs.ErrAccountNotFound)

			_, err = b.Transfer(ctx, "js", tt.current, dec("10"))
			require.ErrorIs(t, err, errs.ErrAccountNotFound)
		})
	}
}

func TestBank_Movements(t *testing.T) {
	b, s := newBank(t)

	rows, err := b.Movements(context.Background(), "ss", true)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	require.True(t, rows[0].Amount.Equal(dec("50")))
	require.True(t, rows[4].Amount.Equal(dec("1000")))

	require.True(t, movementsOf(t, s, "ss")[0].Equal(dec("430")))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
		err   bool
	}{
		{input: "100", want: "100"},
		{input: " 12.5 ", want: "12.5"},
		{input: "", err: true},
		{input: "abc", err: true},
		{input: "0.005", err: true},
		{input: "1e-20000000", err: true},
		{input: "1e400", err: true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		if tt.err {
			require.ErrorIs(t, err, errs.ErrInvalidAmount, "input %q", tt.input)
			continue
		}

		require.NoError(t, err)
		require.True(t, dec(tt.want).Equal(got))
	}
}

func TestBank_extremeAmounts(t *testing.T) {
	b, s := newBank(t)
	ctx := context.Background()

	for _, amount := range []string{"1e-20000000", "1e400", "0.001"} {
		_, err := b.RequestLoan(ctx, "js", dec(amount))
		require.ErrorIs(t, err, errs.ErrInvalidAmount, "loan %s", amount)

		_, err = b.Transfer(ctx, "js", "jd", dec(amount))
		require.ErrorIs(t, err, errs.ErrInvalidAmount, "transfer %s", amount)
	}

	require.Equal(t, accounts.Amounts(200, 450, -400, 3000, -650, -130, 70, 1300), movementsOf(t, s, "js"))
}

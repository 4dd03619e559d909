package store

import (
	"bankist/internal/models/accounts"
	"context"
)

// UpdateFunc receives locked accounts in the order the usernames were given.
// Returning an error discards every change made to them.
type UpdateFunc func(accs []*accounts.Account) error

type Store interface {
	GetAccountByUsername(ctx context.Context, username string) (accounts.Account, error)
	ListAccounts(ctx context.Context) ([]accounts.Account, error)
	AddAccount(ctx context.Context, account *accounts.Account) error
	UpdateAccounts(ctx context.Context, usernames []string, fn UpdateFunc) error
	RemoveAccount(ctx context.Context, username string, check func(account *accounts.Account) error) error
	Close() error
}

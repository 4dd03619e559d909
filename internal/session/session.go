// Package session holds who is logged in. A Session is the single
// "current account" slot; Manager keeps one Session per API client.
package session

import (
	"bankist/internal/errs"
	"bankist/internal/models/accounts"
	"bankist/internal/store"
	"context"
	"errors"
)

type Session struct {
	current string
}

// Authenticate finds the account by exact username and compares the PIN after
// numeric coercion.
func Authenticate(ctx context.Context, s store.Store, username, pinInput string) (accounts.Account, error) {
	account, err := s.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			return accounts.Account{}, errs.ErrCredentialMismatch
		}
		return accounts.Account{}, err
	}

	pin, ok := accounts.ParsePin(pinInput)
	if !ok || pin != account.Pin {
		return accounts.Account{}, errs.ErrCredentialMismatch
	}

	return account, nil
}

// Login replaces the current account on success. On failure the session is
// left as it was.
func (s *Session) Login(ctx context.Context, st store.Store, username, pinInput string) (accounts.Account, error) {
	account, err := Authenticate(ctx, st, username, pinInput)
	if err != nil {
		return accounts.Account{}, err
	}

	s.current = account.Username

	return account, nil
}

func (s *Session) Current() (string, bool) {
	return s.current, s.current != ""
}

func (s *Session) Clear() {
	s.current = ""
}

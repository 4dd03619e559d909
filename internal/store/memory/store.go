// Package memory keeps the account registry in process memory. Each account
// has its own lock; accounts touched together are locked in username order.
package memory

import (
	"bankist/internal/errs"
	"bankist/internal/models/accounts"
	"bankist/internal/store"
	"context"
	"fmt"
	"slices"
	"sync"
)

type entry struct {
	mu      sync.Mutex
	account *accounts.Account
	removed bool
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	order   []string
}

func NewStore(accs ...*accounts.Account) (*Store, error) {
	s := &Store{
		entries: make(map[string]*entry, len(accs)),
	}

	for _, a := range accs {
		if err := s.AddAccount(context.Background(), a); err != nil {
			return nil, fmt.Errorf("unable add account %s: %w", a.Username, err)
		}
	}

	return s, nil
}

func (s *Store) GetAccountByUsername(ctx context.Context, username string) (accounts.Account, error) {
	e, err := s.lookup(ctx, username)
	if err != nil {
		return accounts.Account{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.removed {
		return accounts.Account{}, errs.ErrAccountNotFound
	}

	return e.account.Clone(), nil
}

// ListAccounts returns copies in registry order.
func (s *Store) ListAccounts(ctx context.Context) ([]accounts.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entries := make([]*entry, 0, len(s.order))
	for _, username := range s.order {
		entries = append(entries, s.entries[username])
	}
	s.mu.RUnlock()

	result := make([]accounts.Account, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		if !e.removed {
			result = append(result, e.account.Clone())
		}
		e.mu.Unlock()
	}

	return result, nil
}

func (s *Store) AddAccount(ctx context.Context, account *accounts.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[account.Username]; ok {
		return errs.ErrUsernameTaken
	}

	cp := account.Clone()
	s.entries[account.Username] = &entry{account: &cp}
	s.order = append(s.order, account.Username)

	return nil
}

func (s *Store) UpdateAccounts(ctx context.Context, usernames []string, fn store.UpdateFunc) error {
	locking := slices.Clone(usernames)
	slices.Sort(locking)
	locking = slices.Compact(locking)

	entries, err := s.lookupAll(ctx, locking)
	if err != nil {
		return err
	}

	locked := make(map[string]*entry, len(entries))
	for i, e := range entries {
		e.mu.Lock()
		locked[locking[i]] = e

		if e.removed {
			unlockAll(locked)
			return errs.ErrAccountNotFound
		}
	}
	defer unlockAll(locked)

	working := make(map[string]*accounts.Account, len(locked))
	for username, e := range locked {
		cp := e.account.Clone()
		working[username] = &cp
	}

	accs := make([]*accounts.Account, len(usernames))
	for i, username := range usernames {
		accs[i] = working[username]
	}

	if err := fn(accs); err != nil {
		return err
	}

	for username, e := range locked {
		e.account = working[username]
	}

	return nil
}

// RemoveAccount deletes the account when check passes. check runs with the
// account locked so no update can slip in between.
func (s *Store) RemoveAccount(ctx context.Context, username string, check func(account *accounts.Account) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[username]
	if !ok {
		return errs.ErrAccountNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if check != nil {
		cp := e.account.Clone()
		if err := check(&cp); err != nil {
			return err
		}
	}

	e.removed = true
	delete(s.entries, username)
	s.order = slices.DeleteFunc(s.order, func(u string) bool {
		return u == username
	})

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry)
	s.order = nil

	return nil
}

func (s *Store) lookup(ctx context.Context, username string) (*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[username]
	if !ok {
		return nil, errs.ErrAccountNotFound
	}

	return e, nil
}

// lookupAll resolves every username under one read lock. Entry locks are taken
// only after the registry lock is released.
func (s *Store) lookupAll(ctx context.Context, usernames []string) ([]*entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entry, len(usernames))
	for i, username := range usernames {
		e, ok := s.entries[username]
		if !ok {
			return nil, errs.ErrAccountNotFound
		}
		result[i] = e
	}

	return result, nil
}

func unlockAll(locked map[string]*entry) {
	for _, e := range locked {
		e.mu.Unlock()
	}
}

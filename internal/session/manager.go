package session

import (
	"bankist/internal/errs"
	"bankist/internal/models/accounts"
	"bankist/internal/store"
	"context"
	"github.com/google/uuid"
	"sync"
	"time"
)

type entry struct {
	session Session
	expires time.Time
}

type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*entry
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*entry),
		now:      time.Now,
	}
}

// Login runs the auth gate for a new client and opens a session for it.
func (m *Manager) Login(ctx context.Context, st store.Store, username, pinInput string) (string, accounts.Account, error) {
	var s Session

	account, err := s.Login(ctx, st, username, pinInput)
	if err != nil {
		return "", accounts.Account{}, err
	}

	return m.start(s), account, nil
}

// Start opens a session for an already authenticated username.
func (m *Manager) Start(username string) string {
	return m.start(Session{current: username})
}

func (m *Manager) start(s Session) string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = &entry{
		session: s,
		expires: m.now().Add(m.ttl),
	}

	return id
}

// Get returns the username bound to id and pushes its expiry forward.
func (m *Manager) Get(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok {
		return "", errs.ErrSessionNotFound
	}

	now := m.now()
	if !now.Before(e.expires) {
		delete(m.sessions, id)
		return "", errs.ErrSessionNotFound
	}

	username, ok := e.session.Current()
	if !ok {
		delete(m.sessions, id)
		return "", errs.ErrSessionNotFound
	}

	e.expires = now.Add(m.ttl)

	return username, nil
}

func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
}

// EndForUsername drops every session pointing at username. Used after the
// account is closed.
func (m *Manager) EndForUsername(username string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	ended := 0
	for id, e := range m.sessions {
		if current, _ := e.session.Current(); current == username {
			e.session.Clear()
			delete(m.sessions, id)
			ended++
		}
	}

	return ended
}

// Expire removes sessions whose deadline is not after now.
func (m *Manager) Expire(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	expired := 0
	for id, e := range m.sessions {
		if !now.Before(e.expires) {
			delete(m.sessions, id)
			expired++
		}
	}

	return expired
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}

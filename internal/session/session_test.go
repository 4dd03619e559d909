package session

import (
	"bankist/internal/errs"
	"bankist/internal/models/accounts"
	"bankist/internal/store/memory"
	"context"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSession_Login(t *testing.T) {
	st, err := memory.NewStore(accounts.Seed()...)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		pin      string
		err      error
		current  string
	}{
		{
			name:     "1 positive",
			username: "jd",
			pin:      "2222",
			current:  "jd",
		},
		{
			name:     "2 pin with spaces",
			username: "jd",
			pin:      " 2222",
			current:  "jd",
		},
		{
			name:     "3 wrong pin keeps previous",
			username: "jd",
			pin:      "1111",
			err:      errs.ErrCredentialMismatch,
			current:  "js",
		},
		{
			name:     "4 unknown username keeps previous",
			username: "nobody",
			pin:      "1111",
			err:      errs.ErrCredentialMismatch,
			current:  "js",
		},
		{
			name:     "5 username is case sensitive",
			username: "JD",
			pin:      "2222",
			err:      errs.ErrCredentialMismatch,
			current:  "js",
		},
		{
			name:     "6 pin not a number",
			username: "jd",
			pin:      "22a2",
			err:      errs.ErrCredentialMismatch,
			current:  "js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{}
			_, err := s.Login(context.Background(), st, "js", "1111")
			require.NoError(t, err)

			account, err := s.Login(context.Background(), st, tt.username, tt.pin)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.username, account.Username)
			}

			current, ok := s.Current()
			require.True(t, ok)
			require.Equal(t, tt.current, current)
		})
	}
}

func TestSession_Clear(t *testing.T) {
	s := &Session{current: "js"}
	s.Clear()

	_, ok := s.Current()
	require.False(t, ok)
}

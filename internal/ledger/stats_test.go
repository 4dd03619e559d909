package ledger

import (
	"bankist/internal/models/accounts"
	"github.com/stretchr/testify/require"
	"testing"
)

func seeded() []accounts.Account {
	result := make([]accounts.Account, 0, 4)
	for _, a := range accounts.Seed() {
		result = append(result, a.Clone())
	}

	return result
}

func TestStats(t *testing.T) {
	stats := Stats(seeded())

	requireDecimal(t, "17840", stats.OverallBalance)
	requireDecimal(t, "25180", stats.DepositSum)
	requireDecimal(t, "-7340", stats.WithdrawalSum)
	require.Equal(t, 6, stats.LargeDepositsCount)

	require.Equal(t, []string{"js", "jd", "stw"}, stats.ByActivity[ActivityVeryActive])
	require.Equal(t, []string{"ss"}, stats.ByActivity[ActivityActive])
	require.Equal(t, []string{"js", "stw"}, stats.ByType["Premium"])
	require.Equal(t, []string{"jd"}, stats.ByType["Basic"])
}

func TestActivity(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{count: 0, want: ActivityInactive},
		{count: 1, want: ActivityModerate},
		{count: 4, want: ActivityActive},
		{count: 8, want: ActivityVeryActive},
		{count: 12, want: ActivityVeryActive},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Activity(tt.count), "count %d", tt.count)
	}
}

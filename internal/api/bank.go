package api

import (
	"bankist/internal/models/money"
	bank "bankist/internal/services"
	"bankist/pkg/dto"
	"net/http"
)

const StatsErrPrefix = "Error by get bank stats"

func GetStats(w http.ResponseWriter, r *http.Request, b *bank.Bank) ResponseType {
	stats, err := b.Stats(r.Context())
	if err != nil {
		return errorResponse(StatsErrPrefix, err)
	}

	return jsonResponse(w, StatsErrPrefix, http.StatusOK, dto.Stats{
		OverallBalance: money.New(stats.OverallBalance),
		DepositSum:     money.New(stats.DepositSum),
		WithdrawalSum:  money.New(stats.WithdrawalSum),
		LargeDeposits:  stats.LargeDepositsCount,
		ByActivity:     stats.ByActivity,
		ByType:         stats.ByType,
	})
}

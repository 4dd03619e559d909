package dto

import (
	"bankist/internal/models/money"
)

/**
  {
      "overall_balance": 17840,
      "deposit_sum": 25180,
      "withdrawal_sum": -7340,
      "large_deposits": 6,
      "by_activity": {"very active": ["js", "jd", "stw"], "active": ["ss"]},
      "by_type": {"Premium": ["js", "stw"], "Basic": ["jd"], "Standard": ["ss"]}
  }
*/

type Stats struct {
	OverallBalance money.Money         `json:"overall_balance"`
	DepositSum     money.Money         `json:"deposit_sum"`
	WithdrawalSum  money.Money         `json:"withdrawal_sum"`
	LargeDeposits  int                 `json:"large_deposits"`
	ByActivity     map[string][]string `json:"by_activity"`
	ByType         map[string][]string `json:"by_type"`
}

package dto

import (
	"bankist/internal/models/money"
)

/**
  {
      "id": "5b2d0c37-...",
      "owner": "Jonas Schmedtmann",
      "username": "js",
      "welcome": "Welcome back, Jonas",
      "type": "Premium",
      "interest_rate": 1.2,
      "balance": 3840,
      "in": 5020,
      "out": 1180,
      "interest": 59.4,
      "insights": {
          "deposits": 5,
          "withdrawals": 3,
          "largest": 3000,
          "last_large_movement_ago": 1
      }
  }
*/

type Summary struct {
	ID           string      `json:"id"`
	Owner        string      `json:"owner"`
	Username     string      `json:"username"`
	Welcome      string      `json:"welcome"`
	Type         string      `json:"type"`
	InterestRate money.Money `json:"interest_rate"`
	Balance      money.Money `json:"balance"`
	In           money.Money `json:"in"`
	Out          money.Money `json:"out"`
	Interest     money.Money `json:"interest"`
	Insights     Insights    `json:"insights"`
}

type Insights struct {
	Deposits             int         `json:"deposits"`
	Withdrawals          int         `json:"withdrawals"`
	Largest              money.Money `json:"largest"`
	LastLargeMovementAgo *int        `json:"last_large_movement_ago,omitempty"`
}

/**
  {
      "index": 1,
      "type": "deposit",
      "amount": 200
  }
*/

type Movement struct {
	Index  int         `json:"index"`
	Type   string      `json:"type"`
	Amount money.Money `json:"amount"`
}

type Message struct {
	Message string `json:"message"`
}

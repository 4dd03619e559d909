package dto

import (
	"bankist/internal/models/money"
)

/**
  {
      "to": "jd",
      "amount": 100
  }
*/

type Transfer struct {
	To     string      `json:"to"`
	Amount money.Money `json:"amount"`
}

/**
  {
      "amount": 3000
  }
*/

type Loan struct {
	Amount money.Money `json:"amount"`
}

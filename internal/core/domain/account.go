package domain

import "errors"

// Account types. Credit accounts may carry a negative balance.
const (
	AccountBank    = "bank"
	AccountCash    = "cash"
	AccountCredit  = "credit"
	AccountSavings = "savings"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is a money account owned by a user, displayed on the dashboard.
type Account struct {
	ID      int     `json:"id" bson:"_id"`
	UserID  int     `json:"userId" bson:"user_id"`
	Name    string  `json:"name" bson:"name"`
	Type    string  `json:"type" bson:"type"`
	Balance float64 `json:"balance" bson:"balance"`
	Color   string  `json:"color" bson:"color"`
	Icon    string  `json:"icon" bson:"icon"`
}

package domain

import (
	"errors"
	"time"
)

var ErrExpenseNotFound = errors.New("expense not found")

// Expense is a single purchase recorded by a user. Date is assigned by the
// store at creation time and is immutable afterwards.
type Expense struct {
	ID            int       `json:"id" bson:"_id"`
	UserID        int       `json:"userId" bson:"user_id"`
	Amount        float64   `json:"amount" bson:"amount"`
	Description   string    `json:"description" bson:"description"`
	Category      string    `json:"category" bson:"category"`
	AllergyTags   []string  `json:"allergyTags,omitempty" bson:"allergy_tags,omitempty"`
	IsAllergySafe bool      `json:"isAllergySafe" bson:"is_allergy_safe"`
	Date          time.Time `json:"date" bson:"date"`
}

// InMonth reports whether the expense falls in the calendar month containing now.
func (e *Expense) InMonth(now time.Time) bool {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return !e.Date.Before(startOfMonth) && !e.Date.After(now)
}

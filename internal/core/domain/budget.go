package domain

import (
	"errors"
	"time"
)

var ErrBudgetNotFound = errors.New("budget not found")

// Budget is a per-category monthly spending limit.
type Budget struct {
	ID       int       `json:"id" bson:"_id"`
	UserID   int       `json:"userId" bson:"user_id"`
	Category string    `json:"category" bson:"category"`
	Limit    float64   `json:"limit" bson:"limit"`
	Date     time.Time `json:"date" bson:"date"`
}

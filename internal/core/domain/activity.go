package domain

import "time"

// Activity types.
const (
	ActivityExpense      = "expense"
	ActivityAllergyAlert = "allergy_alert"
	ActivityBillSplit    = "bill_split"
)

// Activity is an append-only feed record summarizing a user-visible event.
// Activities are derived from expense, bill-split, and severe-allergy
// creation; they are never edited or removed.
type Activity struct {
	ID          int       `json:"id" bson:"_id"`
	UserID      int       `json:"userId" bson:"user_id"`
	Type        string    `json:"type" bson:"type"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64   `json:"amount,omitempty" bson:"amount,omitempty"`
	Icon        string    `json:"icon" bson:"icon"`
	Color       string    `json:"color" bson:"color"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
}

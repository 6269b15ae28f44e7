package domain

import (
	"errors"
	"time"
)

// Subscription plans.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models a registered account holder. Users are created on registration,
// mutated on billing-plan changes, and never deleted.
type User struct {
	ID                 int       `json:"id" bson:"_id"`
	Email              string    `json:"email" bson:"email"`
	PasswordHash       string    `json:"-" bson:"password_hash"`
	Plan               string    `json:"plan" bson:"plan"`
	BillingCustomerID  string    `json:"billing_customer_id,omitempty" bson:"billing_customer_id,omitempty"`
	SubscriptionStatus string    `json:"subscription_status,omitempty" bson:"subscription_status,omitempty"`
	CreatedAt          time.Time `json:"created_at" bson:"created_at"`
}

// IsPro reports whether the user is on the paid plan.
func (u *User) IsPro() bool {
	return u.Plan == PlanPro
}

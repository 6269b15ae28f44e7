// Package ports defines the interfaces and DTOs that connect the HTTP layer,
// the domain services, and the storage backends.
package ports

import (
	"context"
	"time"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByBillingCustomer(ctx context.Context, customerID string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// AllergyPatch enumerates the allergy fields the domain allows to change.
// Nil fields are left untouched.
type AllergyPatch struct {
	Name      *string
	Severity  *string
	RiskLevel *string
}

// AllergyRepository defines persistence operations for allergies. Update and
// Delete are scoped to the owning user: an id owned by someone else reads as
// not found.
type AllergyRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*domain.Allergy, error)
	Create(ctx context.Context, a *domain.Allergy) (*domain.Allergy, error)
	Update(ctx context.Context, userID, id int, patch AllergyPatch) (*domain.Allergy, error)
	Delete(ctx context.Context, userID, id int) error
}

// ExpensePatch enumerates the expense fields the domain allows to change.
// The creation date is deliberately absent: it is immutable.
type ExpensePatch struct {
	Amount        *float64
	Description   *string
	Category      *string
	AllergyTags   *[]string
	IsAllergySafe *bool
}

// ExpenseRepository defines persistence operations for expenses. Update and
// Delete are scoped to the owning user: an id owned by someone else reads as
// not found.
type ExpenseRepository interface {
	// ListByUser returns the user's expenses, most recent first.
	ListByUser(ctx context.Context, userID int) ([]*domain.Expense, error)
	// Create stores the expense, assigning its id and creation date.
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	Update(ctx context.Context, userID, id int, patch ExpensePatch) (*domain.Expense, error)
	Delete(ctx context.Context, userID, id int) error
	// MonthlyTotal sums the user's expenses dated within the calendar month
	// containing now.
	MonthlyTotal(ctx context.Context, userID int, now time.Time) (float64, error)
}

// AccountPatch enumerates the account fields the domain allows to change.
type AccountPatch struct {
	Name    *string
	Type    *string
	Balance *float64
	Color   *string
	Icon    *string
}

// AccountRepository defines persistence operations for money accounts. Update
// and Delete are scoped to the owning user: an id owned by someone else reads
// as not found.
type AccountRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, userID, id int, patch AccountPatch) (*domain.Account, error)
	Delete(ctx context.Context, userID, id int) error
	// TotalBalance sums the balance across all of the user's accounts.
	TotalBalance(ctx context.Context, userID int) (float64, error)
}

// RoommatePatch enumerates the roommate fields the domain allows to change.
type RoommatePatch struct {
	Name   *string
	Email  *string
	Avatar *string
}

// RoommateRepository defines persistence operations for roommates. Update and
// Delete are scoped to the owning user: an id owned by someone else reads as
// not found.
type RoommateRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*domain.Roommate, error)
	Create(ctx context.Context, r *domain.Roommate) (*domain.Roommate, error)
	Update(ctx context.Context, userID, id int, patch RoommatePatch) (*domain.Roommate, error)
	Delete(ctx context.Context, userID, id int) error
}

// BillSplitRepository defines persistence operations for bill splits.
type BillSplitRepository interface {
	// ListByUser returns splits the user created or participates in,
	// most recent first.
	ListByUser(ctx context.Context, userID int) ([]*domain.BillSplit, error)
	// Create stores the split, assigning its id and creation date. New splits
	// always start unsettled.
	Create(ctx context.Context, b *domain.BillSplit) (*domain.BillSplit, error)
	FindByID(ctx context.Context, id int) (*domain.BillSplit, error)
	// Settle marks the split settled. Settling an already-settled split is a
	// no-op. An unknown id, or one the user neither created nor participates
	// in, returns domain.ErrBillSplitNotFound.
	Settle(ctx context.Context, userID, id int) error
}

// ActivityRepository defines persistence operations for the append-only
// activity feed.
type ActivityRepository interface {
	// ListRecentByUser returns up to limit activities, most recent first.
	ListRecentByUser(ctx context.Context, userID int, limit int) ([]*domain.Activity, error)
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
}

// BudgetRepository defines persistence operations for budgets.
type BudgetRepository interface {
	ListByUser(ctx context.Context, userID int) ([]*domain.Budget, error)
	Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error)
}

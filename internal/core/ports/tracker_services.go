package ports

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// CreateAllergyInput carries the caller-supplied allergy fields.
type CreateAllergyInput struct {
	UserID    int
	Name      string
	Severity  string
	RiskLevel string
}

// AllergyService defines use-case operations for allergies.
type AllergyService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Allergy, error)
	Create(ctx context.Context, input CreateAllergyInput) (*domain.Allergy, error)
	Update(ctx context.Context, userID, id int, patch AllergyPatch) (*domain.Allergy, error)
	Delete(ctx context.Context, userID, id int) error
}

// CreateExpenseInput carries the caller-supplied expense fields. The creation
// date is assigned by the store, never by the caller.
type CreateExpenseInput struct {
	UserID        int
	Amount        float64
	Description   string
	Category      string
	AllergyTags   []string
	IsAllergySafe bool
}

// ExpenseService defines use-case operations for expenses.
type ExpenseService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Expense, error)
	Create(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, userID, id int, patch ExpensePatch) (*domain.Expense, error)
	Delete(ctx context.Context, userID, id int) error
}

// CreateAccountInput carries the caller-supplied account fields.
type CreateAccountInput struct {
	UserID  int
	Name    string
	Type    string
	Balance float64
	Color   string
	Icon    string
}

// AccountService defines use-case operations for money accounts.
type AccountService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Account, error)
	Create(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	Update(ctx context.Context, userID, id int, patch AccountPatch) (*domain.Account, error)
	Delete(ctx context.Context, userID, id int) error
}

// CreateRoommateInput carries the caller-supplied roommate fields.
type CreateRoommateInput struct {
	UserID int
	Name   string
	Email  string
	Avatar string
}

// RoommateService defines use-case operations for roommates.
type RoommateService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Roommate, error)
	Create(ctx context.Context, input CreateRoommateInput) (*domain.Roommate, error)
	Update(ctx context.Context, userID, id int, patch RoommatePatch) (*domain.Roommate, error)
	Delete(ctx context.Context, userID, id int) error
}

// CreateBudgetInput carries the caller-supplied budget fields.
type CreateBudgetInput struct {
	UserID   int
	Category string
	Limit    float64
}

// BudgetService defines use-case operations for budgets.
type BudgetService interface {
	ListForUser(ctx context.Context, userID int) ([]*domain.Budget, error)
	Create(ctx context.Context, input CreateBudgetInput) (*domain.Budget, error)
}

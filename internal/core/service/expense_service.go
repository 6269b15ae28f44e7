package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// ExpenseService implements expense CRUD and the derived activity feed entry.
type ExpenseService struct {
	expenses   ports.ExpenseRepository
	activities ports.ActivityRepository
	logger     zerolog.Logger
}

func NewExpenseService(expenses ports.ExpenseRepository, activities ports.ActivityRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{expenses: expenses, activities: activities, logger: logger}
}

func (s *ExpenseService) ListForUser(ctx context.Context, userID int) ([]*domain.Expense, error) {
	return s.expenses.ListByUser(ctx, userID)
}

// Create stores the expense and appends exactly one expense activity carrying
// the same amount.
func (s *ExpenseService) Create(ctx context.Context, input ports.CreateExpenseInput) (*domain.Expense, error) {
	expense := &domain.Expense{
		UserID:        input.UserID,
		Amount:        input.Amount,
		Description:   input.Description,
		Category:      input.Category,
		AllergyTags:   input.AllergyTags,
		IsAllergySafe: input.IsAllergySafe,
	}

	created, err := s.expenses.Create(ctx, expense)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", input.UserID).Msg("failed to create expense")
		return nil, err
	}

	safety := "Standard products"
	if created.IsAllergySafe {
		safety = "Allergy-safe products"
	}
	if _, err := s.activities.Create(ctx, &domain.Activity{
		UserID:      created.UserID,
		Type:        domain.ActivityExpense,
		Title:       created.Description,
		Description: fmt.Sprintf("%s • %s", created.Category, safety),
		Amount:      created.Amount,
		Icon:        "fas fa-shopping-cart",
		Color:       "secondary",
		Tags:        created.AllergyTags,
	}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("expense_id", created.ID).
		Int("user_id", created.UserID).
		Str("category", created.Category).
		Msg("expense created")

	return created, nil
}

func (s *ExpenseService) Update(ctx context.Context, userID, id int, patch ports.ExpensePatch) (*domain.Expense, error) {
	return s.expenses.Update(ctx, userID, id, patch)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id int) error {
	return s.expenses.Delete(ctx, userID, id)
}

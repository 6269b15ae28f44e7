package service

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// BudgetService implements budget listing and creation.
type BudgetService struct {
	budgets ports.BudgetRepository
}

func NewBudgetService(budgets ports.BudgetRepository) *BudgetService {
	return &BudgetService{budgets: budgets}
}

func (s *BudgetService) ListForUser(ctx context.Context, userID int) ([]*domain.Budget, error) {
	return s.budgets.ListByUser(ctx, userID)
}

func (s *BudgetService) Create(ctx context.Context, input ports.CreateBudgetInput) (*domain.Budget, error) {
	return s.budgets.Create(ctx, &domain.Budget{
		UserID:   input.UserID,
		Category: input.Category,
		Limit:    input.Limit,
	})
}

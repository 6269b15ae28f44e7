package service

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// AccountService implements money-account CRUD.
type AccountService struct {
	accounts ports.AccountRepository
}

func NewAccountService(accounts ports.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) ListForUser(ctx context.Context, userID int) ([]*domain.Account, error) {
	return s.accounts.ListByUser(ctx, userID)
}

func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	return s.accounts.Create(ctx, &domain.Account{
		UserID:  input.UserID,
		Name:    input.Name,
		Type:    input.Type,
		Balance: input.Balance,
		Color:   input.Color,
		Icon:    input.Icon,
	})
}

func (s *AccountService) Update(ctx context.Context, userID, id int, patch ports.AccountPatch) (*domain.Account, error) {
	return s.accounts.Update(ctx, userID, id, patch)
}

func (s *AccountService) Delete(ctx context.Context, userID, id int) error {
	return s.accounts.Delete(ctx, userID, id)
}

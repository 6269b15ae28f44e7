package memory

import (
	"context"
	"sort"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// BudgetRepo implements ports.BudgetRepository over the shared store.
type BudgetRepo struct {
	store *Store
}

func (s *Store) Budgets() *BudgetRepo { return &BudgetRepo{store: s} }

func (r *BudgetRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Budget, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Budget, 0)
	for _, b := range r.store.budgets {
		if b.UserID == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *BudgetRepo) Create(ctx context.Context, b *domain.Budget) (*domain.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *b
	clone.ID = r.store.allocateID()
	clone.Date = r.store.now()
	r.store.budgets[clone.ID] = &clone

	out := clone
	return &out, nil
}

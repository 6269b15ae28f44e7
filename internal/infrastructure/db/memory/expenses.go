package memory

import (
	"context"
	"sort"
	"time"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// ExpenseRepo implements ports.ExpenseRepository over the shared store.
type ExpenseRepo struct {
	store *Store
}

func (s *Store) Expenses() *ExpenseRepo { return &ExpenseRepo{store: s} }

func (r *ExpenseRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Expense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Expense, 0)
	for _, e := range r.store.expenses {
		if e.UserID == userID {
			out = append(out, cloneExpense(e))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *ExpenseRepo) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneExpense(e)
	clone.ID = r.store.allocateID()
	clone.Date = r.store.now()
	r.store.expenses[clone.ID] = clone

	return cloneExpense(clone), nil
}

func (r *ExpenseRepo) Update(ctx context.Context, userID, id int, patch ports.ExpensePatch) (*domain.Expense, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.expenses[id]
	if !ok || e.UserID != userID {
		return nil, domain.ErrExpenseNotFound
	}
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.AllergyTags != nil {
		e.AllergyTags = append([]string(nil), (*patch.AllergyTags)...)
	}
	if patch.IsAllergySafe != nil {
		e.IsAllergySafe = *patch.IsAllergySafe
	}
	return cloneExpense(e), nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, userID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if e, ok := r.store.expenses[id]; !ok || e.UserID != userID {
		return domain.ErrExpenseNotFound
	}
	delete(r.store.expenses, id)
	return nil
}

// MonthlyTotal sums the user's expenses dated on or after the first instant
// of the calendar month containing now.
func (r *ExpenseRepo) MonthlyTotal(ctx context.Context, userID int, now time.Time) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var total float64
	for _, e := range r.store.expenses {
		if e.UserID == userID && !e.Date.Before(startOfMonth) {
			total += e.Amount
		}
	}
	return total, nil
}

func cloneExpense(e *domain.Expense) *domain.Expense {
	clone := *e
	clone.AllergyTags = append([]string(nil), e.AllergyTags...)
	return &clone
}

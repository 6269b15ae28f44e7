package memory

import (
	"context"
	"sort"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// AccountRepo implements ports.AccountRepository over the shared store.
type AccountRepo struct {
	store *Store
}

func (s *Store) Accounts() *AccountRepo { return &AccountRepo{store: s} }

func (r *AccountRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Account, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Account, 0)
	for _, a := range r.store.accounts {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *a
	clone.ID = r.store.allocateID()
	r.store.accounts[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *AccountRepo) Update(ctx context.Context, userID, id int, patch ports.AccountPatch) (*domain.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.accounts[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAccountNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Balance != nil {
		a.Balance = *patch.Balance
	}
	if patch.Color != nil {
		a.Color = *patch.Color
	}
	if patch.Icon != nil {
		a.Icon = *patch.Icon
	}
	clone := *a
	return &clone, nil
}

func (r *AccountRepo) Delete(ctx context.Context, userID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if a, ok := r.store.accounts[id]; !ok || a.UserID != userID {
		return domain.ErrAccountNotFound
	}
	delete(r.store.accounts, id)
	return nil
}

// TotalBalance sums the balance of every account owned by the user.
func (r *AccountRepo) TotalBalance(ctx context.Context, userID int) (float64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var total float64
	for _, a := range r.store.accounts {
		if a.UserID == userID {
			total += a.Balance
		}
	}
	return total, nil
}

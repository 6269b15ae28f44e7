package memory

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// UserRepo implements ports.UserRepository over the shared store.
type UserRepo struct {
	store *Store
}

func (s *Store) Users() *UserRepo { return &UserRepo{store: s} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Email uniqueness matches the Mongo backend's unique index.
	for _, existing := range r.store.users {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}

	clone := *u
	clone.ID = r.store.allocateID()
	r.store.users[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) FindByBillingCustomer(ctx context.Context, customerID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.BillingCustomerID != "" && u.BillingCustomerID == customerID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *u
	r.store.users[u.ID] = &clone
	return nil
}

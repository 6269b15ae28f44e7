package memory

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// AllergyRepo implements ports.AllergyRepository over the shared store.
type AllergyRepo struct {
	store *Store
}

func (s *Store) Allergies() *AllergyRepo { return &AllergyRepo{store: s} }

func (r *AllergyRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Allergy, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Allergy, 0)
	for _, a := range r.store.allergies {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *AllergyRepo) Create(ctx context.Context, a *domain.Allergy) (*domain.Allergy, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *a
	clone.ID = r.store.allocateID()
	r.store.allergies[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *AllergyRepo) Update(ctx context.Context, userID, id int, patch ports.AllergyPatch) (*domain.Allergy, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	a, ok := r.store.allergies[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAllergyNotFound
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Severity != nil {
		a.Severity = *patch.Severity
	}
	if patch.RiskLevel != nil {
		a.RiskLevel = *patch.RiskLevel
	}
	clone := *a
	return &clone, nil
}

func (r *AllergyRepo) Delete(ctx context.Context, userID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if a, ok := r.store.allergies[id]; !ok || a.UserID != userID {
		return domain.ErrAllergyNotFound
	}
	delete(r.store.allergies, id)
	return nil
}

package memory

import (
	"context"
	"sort"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// RoommateRepo implements ports.RoommateRepository over the shared store.
type RoommateRepo struct {
	store *Store
}

func (s *Store) Roommates() *RoommateRepo { return &RoommateRepo{store: s} }

func (r *RoommateRepo) ListByUser(ctx context.Context, userID int) ([]*domain.Roommate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.Roommate, 0)
	for _, rm := range r.store.roommates {
		if rm.UserID == userID {
			clone := *rm
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RoommateRepo) Create(ctx context.Context, rm *domain.Roommate) (*domain.Roommate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := *rm
	clone.ID = r.store.allocateID()
	r.store.roommates[clone.ID] = &clone

	out := clone
	return &out, nil
}

func (r *RoommateRepo) Update(ctx context.Context, userID, id int, patch ports.RoommatePatch) (*domain.Roommate, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rm, ok := r.store.roommates[id]
	if !ok || rm.UserID != userID {
		return nil, domain.ErrRoommateNotFound
	}
	if patch.Name != nil {
		rm.Name = *patch.Name
	}
	if patch.Email != nil {
		rm.Email = *patch.Email
	}
	if patch.Avatar != nil {
		rm.Avatar = *patch.Avatar
	}
	clone := *rm
	return &clone, nil
}

func (r *RoommateRepo) Delete(ctx context.Context, userID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if rm, ok := r.store.roommates[id]; !ok || rm.UserID != userID {
		return domain.ErrRoommateNotFound
	}
	delete(r.store.roommates, id)
	return nil
}

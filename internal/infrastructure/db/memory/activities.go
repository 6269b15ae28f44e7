package memory

import (
	"context"
	"sort"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// defaultActivityLimit caps feed reads when the caller passes no limit.
const defaultActivityLimit = 10

// ActivityRepo implements ports.ActivityRepository over the shared store.
// Activities are append-only: there is no update or delete.
type ActivityRepo struct {
	store *Store
}

func (s *Store) Activities() *ActivityRepo { return &ActivityRepo{store: s} }

// ListRecentByUser returns up to limit of the user's activities, most recent
// first.
func (r *ActivityRepo) ListRecentByUser(ctx context.Context, userID int, limit int) ([]*domain.Activity, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if limit <= 0 {
		limit = defaultActivityLimit
	}

	out := make([]*domain.Activity, 0)
	for _, a := range r.store.activities {
		if a.UserID == userID {
			out = append(out, cloneActivity(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID > out[j].ID
		}
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ActivityRepo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneActivity(a)
	clone.ID = r.store.allocateID()
	clone.Date = r.store.now()
	r.store.activities[clone.ID] = clone

	return cloneActivity(clone), nil
}

func cloneActivity(a *domain.Activity) *domain.Activity {
	clone := *a
	clone.Tags = append([]string(nil), a.Tags...)
	return &clone
}

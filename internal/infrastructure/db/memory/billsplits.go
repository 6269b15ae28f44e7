package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// BillSplitRepo implements ports.BillSplitRepository over the shared store.
type BillSplitRepo struct {
	store *Store
}

func (s *Store) BillSplits() *BillSplitRepo { return &BillSplitRepo{store: s} }

// ListByUser returns splits the user created or participates in, most recent
// first.
func (r *BillSplitRepo) ListByUser(ctx context.Context, userID int) ([]*domain.BillSplit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*domain.BillSplit, 0)
	for _, b := range r.store.splits {
		if b.CreatorID == userID || slices.Contains(b.Participants, userID) {
			out = append(out, cloneBillSplit(b))
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

func (r *BillSplitRepo) Create(ctx context.Context, b *domain.BillSplit) (*domain.BillSplit, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	clone := cloneBillSplit(b)
	clone.ID = r.store.allocateID()
	clone.Date = r.store.now()
	clone.IsSettled = false
	r.store.splits[clone.ID] = clone

	return cloneBillSplit(clone), nil
}

func (r *BillSplitRepo) FindByID(ctx context.Context, id int) (*domain.BillSplit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.splits[id]
	if !ok {
		return nil, domain.ErrBillSplitNotFound
	}
	return cloneBillSplit(b), nil
}

// Settle flips IsSettled to true. The transition is one-way and idempotent:
// an already-settled split stays settled with no error. Users outside the
// split cannot see it, so for them the id reads as not found.
func (r *BillSplitRepo) Settle(ctx context.Context, userID, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.splits[id]
	if !ok || (b.CreatorID != userID && !slices.Contains(b.Participants, userID)) {
		return domain.ErrBillSplitNotFound
	}
	b.IsSettled = true
	return nil
}

func cloneBillSplit(b *domain.BillSplit) *domain.BillSplit {
	clone := *b
	clone.Participants = append([]int(nil), b.Participants...)
	clone.CustomAmounts = append([]float64(nil), b.CustomAmounts...)
	return &clone
}

package ports

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// CreateBillSplitInput carries all data needed to create a bill split.
type CreateBillSplitInput struct {
	CreatorID     int
	Title         string
	TotalAmount   float64
	Participants  []int
	SplitType     string
	CustomAmounts []float64
}

// BillSplitView pairs a split with the per-participant shares computed for
// its split type, so custom splits are never rendered as equal shares.
type BillSplitView struct {
	*domain.BillSplit
	Shares []float64 `json:"shares"`
}

// BillSplitService defines use-case operations for bill splits.
type BillSplitService interface {
	Create(ctx context.Context, input CreateBillSplitInput) (*BillSplitView, error)
	ListForUser(ctx context.Context, userID int) ([]BillSplitView, error)
	// Settle transitions the split to settled. Repeat calls are no-ops.
	// Unknown ids, and splits the user neither created nor participates in,
	// yield domain.ErrBillSplitNotFound.
	Settle(ctx context.Context, userID, id int) error
}

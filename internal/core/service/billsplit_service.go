package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// BillSplitService implements bill-split creation, listing, and settlement.
type BillSplitService struct {
	splits     ports.BillSplitRepository
	activities ports.ActivityRepository
	// strictCustom rejects custom splits whose amounts do not sum to the
	// total. The analyzed system never validated this; the check is on by
	// default and can be disabled to restore the permissive behavior.
	strictCustom bool
	logger       zerolog.Logger
}

func NewBillSplitService(splits ports.BillSplitRepository, activities ports.ActivityRepository, strictCustom bool, logger zerolog.Logger) *BillSplitService {
	return &BillSplitService{
		splits:       splits,
		activities:   activities,
		strictCustom: strictCustom,
		logger:       logger,
	}
}

// Create validates and stores a bill split, then appends a bill_split
// activity attributing the creator's own share to their feed.
func (s *BillSplitService) Create(ctx context.Context, input ports.CreateBillSplitInput) (*ports.BillSplitView, error) {
	if input.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total amount must be positive", domain.ErrInvalidSplit)
	}
	if len(input.Participants) < 2 {
		return nil, fmt.Errorf("%w: at least two participants required", domain.ErrInvalidSplit)
	}
	if input.SplitType != domain.SplitEqual && input.SplitType != domain.SplitCustom {
		return nil, fmt.Errorf("%w: unknown split type %q", domain.ErrInvalidSplit, input.SplitType)
	}

	split := &domain.BillSplit{
		CreatorID:     input.CreatorID,
		Title:         input.Title,
		TotalAmount:   input.TotalAmount,
		Participants:  input.Participants,
		SplitType:     input.SplitType,
		CustomAmounts: input.CustomAmounts,
	}

	if s.strictCustom {
		if err := split.ValidateCustomAmounts(); err != nil {
			return nil, err
		}
	}

	created, err := s.splits.Create(ctx, split)
	if err != nil {
		s.logger.Error().Err(err).Int("creator_id", input.CreatorID).Msg("failed to create bill split")
		return nil, err
	}

	if _, err := s.activities.Create(ctx, &domain.Activity{
		UserID:      created.CreatorID,
		Type:        domain.ActivityBillSplit,
		Title:       "Bill Split",
		Description: fmt.Sprintf("%s • Your share", created.Title),
		Amount:      created.CreatorShare(),
		Icon:        "fas fa-users",
		Color:       "primary",
		Tags:        []string{fmt.Sprintf("%d people", len(created.Participants))},
	}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("bill_split_id", created.ID).
		Int("creator_id", created.CreatorID).
		Str("split_type", created.SplitType).
		Int("participants", len(created.Participants)).
		Msg("bill split created")

	return &ports.BillSplitView{BillSplit: created, Shares: created.Shares()}, nil
}

// ListForUser returns the splits the user created or participates in, most
// recent first, each paired with its computed shares.
func (s *BillSplitService) ListForUser(ctx context.Context, userID int) ([]ports.BillSplitView, error) {
	splits, err := s.splits.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.BillSplitView, 0, len(splits))
	for _, split := range splits {
		views = append(views, ports.BillSplitView{BillSplit: split, Shares: split.Shares()})
	}
	return views, nil
}

// Settle marks the split settled. The transition is one-way: settling an
// already-settled split succeeds without changing anything. Splits the user
// neither created nor participates in read as not found.
func (s *BillSplitService) Settle(ctx context.Context, userID, id int) error {
	if err := s.splits.Settle(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info().Int("bill_split_id", id).Int("user_id", userID).Msg("bill split settled")
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

func newBillSplitService(splits *stubSplitRepo, activities *stubActivityRepo, strict bool) *BillSplitService {
	return NewBillSplitService(splits, activities, strict, zerolog.Nop())
}

func TestBillSplitService_Create_EqualShares(t *testing.T) {
	splits := newStubSplitRepo()
	activities := newStubActivityRepo()
	svc := newBillSplitService(splits, activities, true)

	view, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:    1,
		Title:        "Dinner",
		TotalAmount:  90,
		Participants: []int{1, 2, 3},
		SplitType:    domain.SplitEqual,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if view.IsSettled {
		t.Fatalf("new split must start unsettled")
	}
	if len(view.Shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(view.Shares))
	}
	for i, share := range view.Shares {
		if share != 30 {
			t.Fatalf("share %d: expected 30, got %v", i, share)
		}
	}

	if len(activities.entries) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(activities.entries))
	}
	act := activities.entries[0]
	if act.Type != domain.ActivityBillSplit {
		t.Fatalf("expected bill_split activity, got %q", act.Type)
	}
	if act.UserID != 1 {
		t.Fatalf("activity must belong to the creator, got user %d", act.UserID)
	}
	if act.Amount != 30 {
		t.Fatalf("activity amount must be the creator's share, got %v", act.Amount)
	}
	if len(act.Tags) != 1 || act.Tags[0] != "3 people" {
		t.Fatalf("unexpected tags: %v", act.Tags)
	}
}

func TestBillSplitService_Create_CustomShares(t *testing.T) {
	splits := newStubSplitRepo()
	activities := newStubActivityRepo()
	svc := newBillSplitService(splits, activities, true)

	view, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:     1,
		Title:         "Groceries",
		TotalAmount:   100,
		Participants:  []int{1, 2},
		SplitType:     domain.SplitCustom,
		CustomAmounts: []float64{70, 30},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if view.Shares[0] != 70 || view.Shares[1] != 30 {
		t.Fatalf("custom shares must be preserved, got %v", view.Shares)
	}
	if activities.entries[0].Amount != 70 {
		t.Fatalf("creator share must be the first custom amount, got %v", activities.entries[0].Amount)
	}
}

func TestBillSplitService_Create_CustomAmountsMustSum(t *testing.T) {
	svc := newBillSplitService(newStubSplitRepo(), newStubActivityRepo(), true)

	_, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:     1,
		Title:         "Rent",
		TotalAmount:   100,
		Participants:  []int{1, 2},
		SplitType:     domain.SplitCustom,
		CustomAmounts: []float64{80, 30},
	})
	if !errors.Is(err, domain.ErrInvalidSplit) {
		t.Fatalf("expected ErrInvalidSplit, got %v", err)
	}
}

func TestBillSplitService_Create_PermissiveCustomAmounts(t *testing.T) {
	splits := newStubSplitRepo()
	svc := newBillSplitService(splits, newStubActivityRepo(), false)

	// strict checking disabled: a mismatched sum is accepted
	_, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:     1,
		Title:         "Rent",
		TotalAmount:   100,
		Participants:  []int{1, 2},
		SplitType:     domain.SplitCustom,
		CustomAmounts: []float64{80, 30},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
}

func TestBillSplitService_Create_Invalid(t *testing.T) {
	svc := newBillSplitService(newStubSplitRepo(), newStubActivityRepo(), true)

	cases := []struct {
		name  string
		input ports.CreateBillSplitInput
	}{
		{"zero total", ports.CreateBillSplitInput{CreatorID: 1, TotalAmount: 0, Participants: []int{1, 2}, SplitType: domain.SplitEqual}},
		{"negative total", ports.CreateBillSplitInput{CreatorID: 1, TotalAmount: -5, Participants: []int{1, 2}, SplitType: domain.SplitEqual}},
		{"single participant", ports.CreateBillSplitInput{CreatorID: 1, TotalAmount: 50, Participants: []int{1}, SplitType: domain.SplitEqual}},
		{"unknown split type", ports.CreateBillSplitInput{CreatorID: 1, TotalAmount: 50, Participants: []int{1, 2}, SplitType: "weighted"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.input); !errors.Is(err, domain.ErrInvalidSplit) {
				t.Fatalf("expected ErrInvalidSplit, got %v", err)
			}
		})
	}
}

func TestBillSplitService_Settle_Idempotent(t *testing.T) {
	splits := newStubSplitRepo()
	svc := newBillSplitService(splits, newStubActivityRepo(), true)

	view, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:    1,
		Title:        "Dinner",
		TotalAmount:  60,
		Participants: []int{1, 2},
		SplitType:    domain.SplitEqual,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Settle(context.Background(), 1, view.ID); err != nil {
		t.Fatalf("first settle: %v", err)
	}
	if err := svc.Settle(context.Background(), 1, view.ID); err != nil {
		t.Fatalf("repeat settle must succeed: %v", err)
	}

	stored, err := splits.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.IsSettled {
		t.Fatalf("split must remain settled")
	}
}

func TestBillSplitService_Settle_NotFound(t *testing.T) {
	svc := newBillSplitService(newStubSplitRepo(), newStubActivityRepo(), true)

	if err := svc.Settle(context.Background(), 1, 999); !errors.Is(err, domain.ErrBillSplitNotFound) {
		t.Fatalf("expected ErrBillSplitNotFound, got %v", err)
	}
}

func TestBillSplitService_Settle_OutsiderCannotSettle(t *testing.T) {
	splits := newStubSplitRepo()
	svc := newBillSplitService(splits, newStubActivityRepo(), true)

	view, err := svc.Create(context.Background(), ports.CreateBillSplitInput{
		CreatorID:    1,
		Title:        "Dinner",
		TotalAmount:  60,
		Participants: []int{1, 2},
		SplitType:    domain.SplitEqual,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// User 3 is neither the creator nor a participant.
	if err := svc.Settle(context.Background(), 3, view.ID); !errors.Is(err, domain.ErrBillSplitNotFound) {
		t.Fatalf("expected ErrBillSplitNotFound, got %v", err)
	}

	stored, err := splits.FindByID(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.IsSettled {
		t.Fatalf("split must stay unsettled")
	}

	// A non-creator participant may settle.
	if err := svc.Settle(context.Background(), 2, view.ID); err != nil {
		t.Fatalf("participant settle: %v", err)
	}
}

func TestBillSplitService_ListForUser_IncludesParticipation(t *testing.T) {
	splits := newStubSplitRepo()
	svc := newBillSplitService(splits, newStubActivityRepo(), true)

	ctx := context.Background()
	mustCreate := func(creator int, participants []int) {
		t.Helper()
		if _, err := svc.Create(ctx, ports.CreateBillSplitInput{
			CreatorID:    creator,
			Title:        "Split",
			TotalAmount:  40,
			Participants: participants,
			SplitType:    domain.SplitEqual,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mustCreate(1, []int{1, 2}) // created by user 1
	mustCreate(2, []int{2, 1}) // user 1 participates
	mustCreate(2, []int{2, 3}) // unrelated

	views, err := svc.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 splits for user 1, got %d", len(views))
	}
	for _, v := range views {
		if len(v.Shares) != len(v.Participants) {
			t.Fatalf("every view must carry one share per participant")
		}
	}
}

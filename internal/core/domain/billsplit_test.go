package domain

import (
	"errors"
	"testing"
)

func TestBillSplit_Shares_Equal(t *testing.T) {
	b := &BillSplit{TotalAmount: 90, Participants: []int{1, 2, 3}, SplitType: SplitEqual}

	shares := b.Shares()
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	for _, s := range shares {
		if s != 30 {
			t.Fatalf("expected 30, got %v", s)
		}
	}
	if b.CreatorShare() != 30 {
		t.Fatalf("expected creator share 30, got %v", b.CreatorShare())
	}
}

func TestBillSplit_Shares_Custom(t *testing.T) {
	b := &BillSplit{
		TotalAmount:   100,
		Participants:  []int{1, 2},
		SplitType:     SplitCustom,
		CustomAmounts: []float64{70, 30},
	}

	shares := b.Shares()
	if shares[0] != 70 || shares[1] != 30 {
		t.Fatalf("custom amounts must be returned verbatim, got %v", shares)
	}
	if b.CreatorShare() != 70 {
		t.Fatalf("creator share must be the first custom amount, got %v", b.CreatorShare())
	}
}

func TestBillSplit_Shares_CustomCountMismatchFallsBackToEqual(t *testing.T) {
	b := &BillSplit{
		TotalAmount:   100,
		Participants:  []int{1, 2},
		SplitType:     SplitCustom,
		CustomAmounts: []float64{100},
	}

	shares := b.Shares()
	if shares[0] != 50 || shares[1] != 50 {
		t.Fatalf("mismatched custom amounts fall back to equal shares, got %v", shares)
	}
}

func TestBillSplit_ValidateCustomAmounts(t *testing.T) {
	cases := []struct {
		name    string
		split   BillSplit
		wantErr bool
	}{
		{
			"exact sum",
			BillSplit{TotalAmount: 100, Participants: []int{1, 2}, SplitType: SplitCustom, CustomAmounts: []float64{70, 30}},
			false,
		},
		{
			"within tolerance",
			BillSplit{TotalAmount: 100, Participants: []int{1, 2, 3}, SplitType: SplitCustom, CustomAmounts: []float64{33.33, 33.33, 33.34}},
			false,
		},
		{
			"sum mismatch",
			BillSplit{TotalAmount: 100, Participants: []int{1, 2}, SplitType: SplitCustom, CustomAmounts: []float64{80, 30}},
			true,
		},
		{
			"count mismatch",
			BillSplit{TotalAmount: 100, Participants: []int{1, 2}, SplitType: SplitCustom, CustomAmounts: []float64{100}},
			true,
		},
		{
			"equal splits skip the check",
			BillSplit{TotalAmount: 100, Participants: []int{1, 2}, SplitType: SplitEqual},
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.split.ValidateCustomAmounts()
			if tc.wantErr && !errors.Is(err, ErrInvalidSplit) {
				t.Fatalf("expected ErrInvalidSplit, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

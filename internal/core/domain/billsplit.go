package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Split types.
const (
	SplitEqual  = "equal"
	SplitCustom = "custom"
)

// customSumTolerance absorbs floating-point noise when checking that custom
// amounts add up to the total.
const customSumTolerance = 0.01

var ErrBillSplitNotFound = errors.New("bill split not found")
var ErrInvalidSplit = errors.New("invalid bill split")

// BillSplit is a shared expense divided among participants. IsSettled only
// ever transitions false to true; Date is assigned by the store.
type BillSplit struct {
	ID            int       `json:"id" bson:"_id"`
	CreatorID     int       `json:"creatorId" bson:"creator_id"`
	Title         string    `json:"title" bson:"title"`
	TotalAmount   float64   `json:"totalAmount" bson:"total_amount"`
	Participants  []int     `json:"participants" bson:"participants"`
	SplitType     string    `json:"splitType" bson:"split_type"`
	CustomAmounts []float64 `json:"customAmounts,omitempty" bson:"custom_amounts,omitempty"`
	IsSettled     bool      `json:"isSettled" bson:"is_settled"`
	Date          time.Time `json:"date" bson:"date"`
}

// Shares returns each participant's share in participant order: the supplied
// custom amounts for custom splits, otherwise total divided by participant
// count. Equal shares use plain floating-point division; no remainder
// reconciliation is performed.
func (b *BillSplit) Shares() []float64 {
	shares := make([]float64, len(b.Participants))
	if b.SplitType == SplitCustom && len(b.CustomAmounts) == len(b.Participants) {
		copy(shares, b.CustomAmounts)
		return shares
	}
	if len(b.Participants) == 0 {
		return shares
	}
	per := b.TotalAmount / float64(len(b.Participants))
	for i := range shares {
		shares[i] = per
	}
	return shares
}

// CreatorShare is the amount attributed to the creator's own activity feed:
// the first custom amount for custom splits, the equal share otherwise.
func (b *BillSplit) CreatorShare() float64 {
	if b.SplitType == SplitCustom {
		if len(b.CustomAmounts) == 0 {
			return 0
		}
		return b.CustomAmounts[0]
	}
	if len(b.Participants) == 0 {
		return 0
	}
	return b.TotalAmount / float64(len(b.Participants))
}

// ValidateCustomAmounts checks that a custom split carries one amount per
// participant and that the amounts sum to the total within tolerance.
func (b *BillSplit) ValidateCustomAmounts() error {
	if b.SplitType != SplitCustom {
		return nil
	}
	if len(b.CustomAmounts) != len(b.Participants) {
		return fmt.Errorf("%w: custom amounts must match participant count", ErrInvalidSplit)
	}
	var sum float64
	for _, a := range b.CustomAmounts {
		sum += a
	}
	if math.Abs(sum-b.TotalAmount) > customSumTolerance {
		return fmt.Errorf("%w: custom amounts must sum to the total", ErrInvalidSplit)
	}
	return nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

func newDashboardFixture() (*DashboardService, *stubAllergyRepo, *stubExpenseRepo, *stubAccountRepo, *stubActivityRepo, *BillSplitService) {
	allergies := newStubAllergyRepo()
	expenses := newStubExpenseRepo()
	accounts := newStubAccountRepo()
	activities := newStubActivityRepo()
	splits := NewBillSplitService(newStubSplitRepo(), activities, true, zerolog.Nop())
	svc := NewDashboardService(allergies, expenses, accounts, activities, splits, zerolog.Nop())
	return svc, allergies, expenses, accounts, activities, splits
}

func TestDashboardService_Summary(t *testing.T) {
	svc, allergies, expenses, accounts, _, splits := newDashboardFixture()
	ctx := context.Background()

	allergies.Create(ctx, &domain.Allergy{UserID: 1, Name: "Peanuts", Severity: domain.SeveritySevere, RiskLevel: domain.RiskHigh})
	allergies.Create(ctx, &domain.Allergy{UserID: 1, Name: "Dairy", Severity: domain.SeverityMild, RiskLevel: domain.RiskLow})
	allergies.Create(ctx, &domain.Allergy{UserID: 2, Name: "Gluten", Severity: domain.SeverityMild, RiskLevel: domain.RiskLow})

	expenses.Create(ctx, &domain.Expense{UserID: 1, Amount: 40})
	expenses.Create(ctx, &domain.Expense{UserID: 1, Amount: 10})
	expenses.Create(ctx, &domain.Expense{UserID: 2, Amount: 99})

	accounts.Create(ctx, &domain.Account{UserID: 1, Type: domain.AccountBank, Balance: 100})
	accounts.Create(ctx, &domain.Account{UserID: 1, Type: domain.AccountCash, Balance: 50})
	accounts.Create(ctx, &domain.Account{UserID: 1, Type: domain.AccountCredit, Balance: -20})

	settled, err := splits.Create(ctx, ports.CreateBillSplitInput{
		CreatorID: 1, Title: "Old", TotalAmount: 30, Participants: []int{1, 2}, SplitType: domain.SplitEqual,
	})
	if err != nil {
		t.Fatalf("create split: %v", err)
	}
	if err := splits.Settle(ctx, 1, settled.ID); err != nil {
		t.Fatalf("settle: %v", err)
	}
	if _, err := splits.Create(ctx, ports.CreateBillSplitInput{
		CreatorID: 1, Title: "Open", TotalAmount: 60, Participants: []int{1, 2}, SplitType: domain.SplitEqual,
	}); err != nil {
		t.Fatalf("create split: %v", err)
	}

	summary, err := svc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if summary.AllergyCount != 2 {
		t.Fatalf("expected 2 allergies, got %d", summary.AllergyCount)
	}
	if summary.MonthlyExpenses != 50 {
		t.Fatalf("expected monthly total 50, got %v", summary.MonthlyExpenses)
	}
	if summary.TotalBalance != 130 {
		t.Fatalf("expected balance 130, got %v", summary.TotalBalance)
	}
	if len(summary.Accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(summary.Accounts))
	}
	if len(summary.ActiveBillSplits) != 1 {
		t.Fatalf("settled splits must be excluded, got %d active", len(summary.ActiveBillSplits))
	}
	if summary.ActiveBillSplits[0].Title != "Open" {
		t.Fatalf("unexpected active split: %q", summary.ActiveBillSplits[0].Title)
	}
}

func TestDashboardService_Summary_RecentActivityLimit(t *testing.T) {
	svc, _, _, _, activities, _ := newDashboardFixture()
	ctx := context.Background()

	for i := 0; i < 8; i++ {
		activities.Create(ctx, &domain.Activity{UserID: 1, Type: domain.ActivityExpense, Title: "e"})
	}

	summary, err := svc.Summary(ctx, 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(summary.RecentActivities) != 5 {
		t.Fatalf("expected at most 5 recent activities, got %d", len(summary.RecentActivities))
	}
	// most recent first
	for i := 1; i < len(summary.RecentActivities); i++ {
		if summary.RecentActivities[i-1].ID < summary.RecentActivities[i].ID {
			t.Fatalf("activities must be ordered most recent first")
		}
	}
}

func TestDashboardService_Achievements(t *testing.T) {
	svc, allergies, expenses, _, _, _ := newDashboardFixture()
	ctx := context.Background()

	allergies.Create(ctx, &domain.Allergy{UserID: 1, Name: "Peanuts"})
	allergies.Create(ctx, &domain.Allergy{UserID: 1, Name: "Dairy"})
	allergies.Create(ctx, &domain.Allergy{UserID: 1, Name: "Soy"})

	expenses.Create(ctx, &domain.Expense{UserID: 1, Amount: 10, IsAllergySafe: true, Date: time.Now()})
	expenses.Create(ctx, &domain.Expense{UserID: 1, Amount: 20, IsAllergySafe: true, Date: time.Now()})
	expenses.Create(ctx, &domain.Expense{UserID: 1, Amount: 5, Date: time.Now()})

	a, err := svc.Achievements(ctx, 1)
	if err != nil {
		t.Fatalf("achievements: %v", err)
	}
	if a.AllergensAvoided != 6 {
		t.Fatalf("expected allergensAvoided 6, got %d", a.AllergensAvoided)
	}
	if a.SafePurchases != 2 {
		t.Fatalf("expected safePurchases 2, got %d", a.SafePurchases)
	}
	if a.MonthsSafe != 3 {
		t.Fatalf("expected monthsSafe 3, got %d", a.MonthsSafe)
	}
}

package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/ports"
)

// recentActivityLimit caps the dashboard feed.
const recentActivityLimit = 5

// monthsSafeConstant is the fixed months-safe counter shown on the sharing
// screen. Presentation-only.
const monthsSafeConstant = 3

// DashboardService aggregates the per-user read models for the dashboard and
// achievements endpoints. Every number is recomputed from the store on each
// call; nothing is cached.
type DashboardService struct {
	allergies  ports.AllergyRepository
	expenses   ports.ExpenseRepository
	accounts   ports.AccountRepository
	activities ports.ActivityRepository
	splits     ports.BillSplitService
	logger     zerolog.Logger
}

func NewDashboardService(
	allergies ports.AllergyRepository,
	expenses ports.ExpenseRepository,
	accounts ports.AccountRepository,
	activities ports.ActivityRepository,
	splits ports.BillSplitService,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		allergies:  allergies,
		expenses:   expenses,
		accounts:   accounts,
		activities: activities,
		splits:     splits,
		logger:     logger,
	}
}

// Summary builds the aggregate dashboard view: allergy count, month-to-date
// expense total, total balance across the user's accounts, the five most
// recent activities, and the user's unsettled bill splits.
func (s *DashboardService) Summary(ctx context.Context, userID int) (*ports.DashboardSummary, error) {
	allergies, err := s.allergies.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	monthly, err := s.expenses.MonthlyTotal(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}

	accounts, err := s.accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalBalance, err := s.accounts.TotalBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.activities.ListRecentByUser(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	splits, err := s.splits.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	active := make([]ports.BillSplitView, 0, len(splits))
	for _, v := range splits {
		if !v.IsSettled {
			active = append(active, v)
		}
	}

	return &ports.DashboardSummary{
		AllergyCount:     len(allergies),
		MonthlyExpenses:  monthly,
		TotalBalance:     totalBalance,
		RecentActivities: recent,
		ActiveBillSplits: active,
		Accounts:         accounts,
	}, nil
}

// Achievements derives the gamification counters: twice the tracked allergy
// count, the number of allergy-safe purchases, and a fixed months-safe value.
func (s *DashboardService) Achievements(ctx context.Context, userID int) (*ports.AchievementSummary, error) {
	allergies, err := s.allergies.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	safe := 0
	for _, e := range expenses {
		if e.IsAllergySafe {
			safe++
		}
	}

	return &ports.AchievementSummary{
		AllergensAvoided: len(allergies) * 2,
		SafePurchases:    safe,
		MonthsSafe:       monthsSafeConstant,
	}, nil
}

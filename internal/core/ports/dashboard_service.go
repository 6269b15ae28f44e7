package ports

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// DashboardSummary is the aggregate view rendered on the home screen. All
// totals are read-time reductions over the current store contents; nothing is
// cached or incrementally maintained.
type DashboardSummary struct {
	AllergyCount     int                `json:"allergyCount"`
	MonthlyExpenses  float64            `json:"monthlyExpenses"`
	TotalBalance     float64            `json:"totalBalance"`
	RecentActivities []*domain.Activity `json:"recentActivities"`
	ActiveBillSplits []BillSplitView    `json:"activeBillSplits"`
	Accounts         []*domain.Account  `json:"accounts"`
}

// AchievementSummary holds the derived gamification counters shown on the
// sharing screen. Presentation-only.
type AchievementSummary struct {
	AllergensAvoided int `json:"allergensAvoided"`
	SafePurchases    int `json:"safePurchases"`
	MonthsSafe       int `json:"monthsSafe"`
}

// DashboardService aggregates per-user read models.
type DashboardService interface {
	Summary(ctx context.Context, userID int) (*DashboardSummary, error)
	Achievements(ctx context.Context, userID int) (*AchievementSummary, error)
}

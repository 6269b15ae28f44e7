// Package metrics defines and registers all custom Prometheus metrics for the
// SafeSpend API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "safespend"

// ExpensesCreatedTotal counts recorded expenses.
// Label:
//   - category: the expense category supplied by the user
var ExpensesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "expenses_created_total",
		Help:      "Total number of expenses recorded, by category.",
	},
	[]string{"category"},
)

// BillSplitsCreatedTotal counts created bill splits.
// Label:
//   - split_type: "equal" or "custom"
var BillSplitsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bill_splits_created_total",
		Help:      "Total number of bill splits created, by split type.",
	},
	[]string{"split_type"},
)

// BillSplitsSettledTotal counts successful settle calls. Settling is
// idempotent, so repeat calls on the same split are counted too.
var BillSplitsSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bill_splits_settled_total",
		Help:      "Total number of successful settle operations.",
	},
)

// ActivitiesCreatedTotal counts derived activity-feed records.
// Label:
//   - type: "expense", "allergy_alert", or "bill_split"
var ActivitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activities_created_total",
		Help:      "Total number of activity feed records appended, by type.",
	},
	[]string{"type"},
)

// BillingWebhooksTotal counts billing webhook deliveries.
// Label:
//   - result: "applied", "ignored", or "error"
var BillingWebhooksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "billing_webhooks_total",
		Help:      "Total number of billing webhook events received, by result.",
	},
	[]string{"result"},
)

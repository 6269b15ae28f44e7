package ports

import (
	"context"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// BillingProvider abstracts the external payment provider. The shipped
// implementation is a stub pass-through: no real payment traffic occurs.
type BillingProvider interface {
	// EnsureCustomer returns the provider customer id for the user, creating
	// one when the user has none yet.
	EnsureCustomer(ctx context.Context, u *domain.User) (string, error)
	CheckoutSessionURL(ctx context.Context, customerID string) (string, error)
	PortalSessionURL(ctx context.Context, customerID string) (string, error)
}

// WebhookEvent is a provider notification about a subscription change.
type WebhookEvent struct {
	ID         string
	Type       string
	CustomerID string
	Status     string
}

// Webhook event types the service reacts to.
const (
	WebhookSubscriptionActive   = "subscription.active"
	WebhookSubscriptionCanceled = "subscription.canceled"
)

// BillingService defines subscription-management use cases.
type BillingService interface {
	CreateCheckoutSession(ctx context.Context, userID int) (string, error)
	CreatePortalSession(ctx context.Context, userID int) (string, error)
	// HandleWebhook applies a provider event to the matching user. Replayed
	// event ids are skipped.
	HandleWebhook(ctx context.Context, event WebhookEvent) error
}

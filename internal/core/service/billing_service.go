package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
	"github.com/safespend/safespend-api/internal/core/ports"
)

// WebhookDeduper abstracts the webhook replay store (Redis).
type WebhookDeduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string) error
}

// BillingService implements the stubbed subscription flow: session URLs come
// from the provider stub and webhooks flip the user's plan tag.
type BillingService struct {
	users    ports.UserRepository
	provider ports.BillingProvider
	dedup    WebhookDeduper
	log      zerolog.Logger
}

func NewBillingService(users ports.UserRepository, provider ports.BillingProvider, dedup WebhookDeduper, log zerolog.Logger) *BillingService {
	return &BillingService{users: users, provider: provider, dedup: dedup, log: log}
}

func (s *BillingService) CreateCheckoutSession(ctx context.Context, userID int) (string, error) {
	customerID, err := s.customerFor(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.provider.CheckoutSessionURL(ctx, customerID)
}

func (s *BillingService) CreatePortalSession(ctx context.Context, userID int) (string, error) {
	customerID, err := s.customerFor(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.provider.PortalSessionURL(ctx, customerID)
}

// customerFor resolves the provider customer id for the user, persisting a
// newly assigned id back onto the user record.
func (s *BillingService) customerFor(ctx context.Context, userID int) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.BillingCustomerID != "" {
		return user.BillingCustomerID, nil
	}

	customerID, err := s.provider.EnsureCustomer(ctx, user)
	if err != nil {
		return "", err
	}
	user.BillingCustomerID = customerID
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	return customerID, nil
}

// HandleWebhook applies a provider subscription event to the matching user.
// Replayed event ids are skipped; unknown event types are ignored.
func (s *BillingService) HandleWebhook(ctx context.Context, event ports.WebhookEvent) error {
	seen, err := s.dedup.Seen(ctx, event.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("event_id", event.ID).Msg("webhook dedup check failed, processing anyway")
	} else if seen {
		s.log.Debug().Str("event_id", event.ID).Msg("duplicate webhook skipped")
		return nil
	}

	user, err := s.users.FindByBillingCustomer(ctx, event.CustomerID)
	if err != nil {
		return fmt.Errorf("handle webhook: %w", err)
	}

	switch event.Type {
	case ports.WebhookSubscriptionActive:
		user.Plan = domain.PlanPro
		user.SubscriptionStatus = event.Status
	case ports.WebhookSubscriptionCanceled:
		user.Plan = domain.PlanFree
		user.SubscriptionStatus = event.Status
	default:
		s.log.Debug().Str("event_type", event.Type).Msg("ignoring unhandled webhook type")
		return nil
	}

	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("handle webhook: update user: %w", err)
	}

	if markErr := s.dedup.Mark(ctx, event.ID); markErr != nil {
		s.log.Warn().Err(markErr).Str("event_id", event.ID).Msg("failed to set webhook dedup key")
	}

	s.log.Info().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Int("user_id", user.ID).
		Str("plan", user.Plan).
		Msg("billing webhook applied")

	return nil
}

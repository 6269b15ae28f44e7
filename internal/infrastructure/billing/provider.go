// Package billing contains the stub payment-provider integration: a
// pass-through that mints provider-shaped identifiers and session URLs
// without any network traffic. Swapping in a real provider client means
// implementing ports.BillingProvider against its SDK.
package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/safespend/safespend-api/internal/core/domain"
)

// StubProvider implements ports.BillingProvider without calling out.
type StubProvider struct {
	baseURL string
	log     zerolog.Logger
}

func NewStubProvider(baseURL string, log zerolog.Logger) *StubProvider {
	return &StubProvider{baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// EnsureCustomer mints a new customer id for the user. The caller persists it
// on the user record, so repeat calls for the same user never reach here.
func (p *StubProvider) EnsureCustomer(ctx context.Context, u *domain.User) (string, error) {
	id := "cus_" + shortID()
	p.log.Info().Int("user_id", u.ID).Str("customer_id", id).Msg("stub billing customer created")
	return id, nil
}

func (p *StubProvider) CheckoutSessionURL(ctx context.Context, customerID string) (string, error) {
	return fmt.Sprintf("%s/checkout/cs_%s?customer=%s", p.baseURL, shortID(), customerID), nil
}

func (p *StubProvider) PortalSessionURL(ctx context.Context, customerID string) (string, error) {
	return fmt.Sprintf("%s/portal/ps_%s?customer=%s", p.baseURL, shortID(), customerID), nil
}

// shortID returns a compact, provider-looking token.
func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// webhookTTL bounds how long delivered event ids are remembered. Providers
// retry deliveries for at most a day, so older replays cannot occur.
const webhookTTL = 24 * time.Hour

// WebhookDeduper records billing webhook event ids so replayed deliveries can
// be skipped. Key format: billing:webhook:<event_id>
type WebhookDeduper struct {
	client *redis.Client
}

// NewWebhookDeduper creates a WebhookDeduper wrapping the given Redis client.
func NewWebhookDeduper(client *redis.Client) *WebhookDeduper {
	return &WebhookDeduper{client: client}
}

// Seen reports whether this event id has already been processed.
func (d *WebhookDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("webhook dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event id has been processed (expires after webhookTTL).
func (d *WebhookDeduper) Mark(ctx context.Context, eventID string) error {
	return d.client.Set(ctx, d.key(eventID), "1", webhookTTL).Err()
}

func (d *WebhookDeduper) key(eventID string) string {
	return "billing:webhook:" + eventID
}

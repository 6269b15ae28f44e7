package billing

import (
	"context"
	"sync"
	"time"
)

const localDedupTTL = 24 * time.Hour

// LocalDeduper is a process-local webhook replay store used when Redis is
// disabled. Entries expire lazily on access.
type LocalDeduper struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

func NewLocalDeduper() *LocalDeduper {
	return &LocalDeduper{seen: make(map[string]time.Time)}
}

func (d *LocalDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	at, ok := d.seen[eventID]
	if !ok {
		return false, nil
	}
	if time.Since(at) > localDedupTTL {
		delete(d.seen, eventID)
		return false, nil
	}
	return true, nil
}

func (d *LocalDeduper) Mark(ctx context.Context, eventID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen[eventID] = time.Now()
	return nil
}

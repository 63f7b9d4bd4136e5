package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const warningKeyPrefix = "emlak:conflict-warning:"

// redisWarningTracker stores the last warned contract id per session in
// redis so that every server instance sees the same state.
type redisWarningTracker struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisWarningTracker stores warning state under
// "emlak:conflict-warning:<session>" keys that expire after ttl. A zero ttl
// keeps keys until they are cleared.
func NewRedisWarningTracker(client redis.UniversalClient, ttl time.Duration) WarningTracker {
	return &redisWarningTracker{client: client, ttl: ttl}
}

// SwapWarned stores contractID for the session and returns the previous value
// in one SET ... GET round trip, so concurrent checks of the same session see
// distinct previous values.
func (t *redisWarningTracker) SwapWarned(ctx context.Context, sessionID, contractID string) (string, error) {
	prev, err := t.client.SetArgs(ctx, warningKeyPrefix+sessionID, contractID, redis.SetArgs{
		Get: true,
		TTL: t.ttl,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error swapping warning state: %w", err)
	}
	return prev, nil
}

func (t *redisWarningTracker) Clear(ctx context.Context, sessionID string) error {
	if err := t.client.Del(ctx, warningKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("error clearing warning state: %w", err)
	}
	return nil
}

type warningEntry struct {
	contractID string
	expires    time.Time
}

// memoryWarningTracker is the single-instance fallback.
type memoryWarningTracker struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]warningEntry
}

// NewMemoryWarningTracker keeps warning state in process. Expired entries are
// ignored on read and removed by Sweep.
func NewMemoryWarningTracker(ttl time.Duration) WarningTracker {
	return &memoryWarningTracker{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]warningEntry),
	}
}

func (t *memoryWarningTracker) SwapWarned(ctx context.Context, sessionID, contractID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	prev := ""
	if e, ok := t.entries[sessionID]; ok && (t.ttl <= 0 || !now.After(e.expires)) {
		prev = e.contractID
	}

	t.entries[sessionID] = warningEntry{contractID: contractID, expires: now.Add(t.ttl)}
	return prev, nil
}

func (t *memoryWarningTracker) Clear(ctx context.Context, sessionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, sessionID)
	return nil
}

// Sweep drops expired sessions. Without a TTL nothing expires.
func (t *memoryWarningTracker) Sweep(ctx context.Context) int {
	if t.ttl <= 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	removed := 0
	for sessionID, e := range t.entries {
		if now.After(e.expires) {
			delete(t.entries, sessionID)
			removed++
		}
	}
	return removed
}

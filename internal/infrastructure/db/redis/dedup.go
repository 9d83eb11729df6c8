package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

const dedupTTL = time.Hour

// DedupChecker provides audit-event idempotency checks backed by Redis.
// Key format: audit:<email>:<action>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact audit event was already processed.
func (d *DedupChecker) IsDuplicate(ctx context.Context, event domain.AuditEvent) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(event)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this audit event has been processed (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, event domain.AuditEvent) error {
	return d.client.Set(ctx, d.key(event), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(event domain.AuditEvent) string {
	return fmt.Sprintf("audit:%s:%s:%d", event.Email, event.Action, event.OccurredAt.Unix())
}

package ports

import (
	"context"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

// AuditSink accepts audit events for asynchronous processing. Enqueue is
// fire-and-forget: it must not block the request path beyond the channel
// buffer and must never return an error to the producing operation.
type AuditSink interface {
	Enqueue(event domain.AuditEvent)
}

// AuditService processes a single audit event end to end.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository persists processed audit events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}

// DedupChecker answers whether an audit event was already processed and
// records processed events. Backed by Redis in production.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, event domain.AuditEvent) (bool, error)
	Mark(ctx context.Context, event domain.AuditEvent) error
}

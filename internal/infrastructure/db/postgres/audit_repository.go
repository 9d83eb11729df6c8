package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fullstack-labs/user-service/internal/core/domain"
)

// AuditRepository appends processed lifecycle events to the audit_events
// table. The table is append-only; nothing in the service updates or
// deletes audit rows.
type AuditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_events (user_id, email, action, occurred_at)
		 VALUES ($1, $2, $3, $4)`,
		event.UserID, event.Email, string(event.Action), event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/fullstack-labs/user-service/internal/api/metrics"
	"github.com/fullstack-labs/user-service/internal/core/domain"
	"github.com/fullstack-labs/user-service/internal/core/ports"
)

type auditService struct {
	repo  ports.AuditRepository
	dedup ports.DedupChecker
	log   zerolog.Logger
}

// NewAuditService returns an AuditService that deduplicates and persists
// account lifecycle events.
func NewAuditService(repo ports.AuditRepository, dedup ports.DedupChecker, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, dedup: dedup, log: log}
}

// Process deduplicates and persists a single audit event. A failed dedup
// lookup degrades to processing the event anyway; losing the check is
// cheaper than losing the record.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	isDup, err := s.dedup.IsDuplicate(ctx, event)
	if err != nil {
		s.log.Warn().Err(err).Str("email", event.Email).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.AuditDedupTotal.WithLabelValues("hit").Inc()
		s.log.Debug().Str("email", event.Email).Str("action", string(event.Action)).Msg("duplicate audit event skipped")
		return nil
	}
	metrics.AuditDedupTotal.WithLabelValues("miss").Inc()

	if markErr := s.dedup.Mark(ctx, event); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", event.Email).Msg("failed to set dedup key")
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("process audit event: %w", err)
	}

	metrics.AuditEventsProcessedTotal.WithLabelValues(string(event.Action)).Inc()
	s.log.Info().
		Int64("user_id", event.UserID).
		Str("action", string(event.Action)).
		Msg("audit event recorded")

	return nil
}

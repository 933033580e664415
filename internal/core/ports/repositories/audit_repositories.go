package repositories

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// AuditLogRepositoryFacade persists the bounded audit log.
type AuditLogRepositoryFacade interface {
	// SaveLog inserts a new log entry.
	SaveLog(ctx context.Context, log domain.SystemAuditLog) error

	// PruneToLimit removes all but the limit most recent entries.
	PruneToLimit(ctx context.Context, limit int) error

	// ListLogs retrieves retained entries, newest first.
	ListLogs(ctx context.Context) ([]domain.SystemAuditLog, error)
}

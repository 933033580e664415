package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// AuditSvcFacade is the bounded chronicle of mutating actions. Record never
// fails a business operation: audit write failures are logged and swallowed
// by callers.
type AuditSvcFacade interface {
	// Record appends a log entry and prunes the log to its retention limit.
	Record(ctx context.Context, userID, action, details string, severity domain.LogSeverity) error

	// List returns the retained entries, newest first.
	List(ctx context.Context) ([]domain.SystemAuditLog, error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

// auditService maintains the bounded audit trail: every Record prunes the
// store back to the retention limit, so the log is a rolling window of the
// most recent mutating actions rather than a permanent archive.
type auditService struct {
	auditRepo portsrepo.AuditLogRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditLogRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends an audit entry and prunes the log to the retention limit.
func (s *auditService) Record(ctx context.Context, userID, action, details string, severity domain.LogSeverity) error {
	entry := domain.SystemAuditLog{
		LogID:     uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Module:    domain.ModuleFromAction(action),
		Details:   details,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.SaveLog(ctx, entry); err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}

	// Pruning failure is not worth failing the action that was being audited;
	// the next successful Record re-trims anyway.
	if err := s.auditRepo.PruneToLimit(ctx, domain.AuditLogLimit); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to prune audit log",
			slog.String("error", err.Error()))
	}
	return nil
}

// List returns the retained audit entries, newest first.
func (s *auditService) List(ctx context.Context) ([]domain.SystemAuditLog, error) {
	logs, err := s.auditRepo.ListLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	if logs == nil {
		logs = []domain.SystemAuditLog{}
	}
	return logs, nil
}

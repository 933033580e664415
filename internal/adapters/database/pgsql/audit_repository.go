package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

type PgxAuditLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAuditLogRepository creates a new repository for the bounded audit log.
func NewPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{pool: pool}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

func (r *PgxAuditLogRepository) SaveLog(ctx context.Context, log domain.SystemAuditLog) error {
	query := `
		INSERT INTO system_audit_logs (log_id, user_id, action, module, details, severity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		log.LogID,
		log.UserID,
		log.Action,
		log.Module,
		log.Details,
		log.Severity,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit log %s: %w", log.LogID, err)
	}
	return nil
}

// PruneToLimit deletes everything older than the limit most recent entries.
// seq keeps the order stable when timestamps collide.
func (r *PgxAuditLogRepository) PruneToLimit(ctx context.Context, limit int) error {
	query := `
		DELETE FROM system_audit_logs
		WHERE seq NOT IN (
			SELECT seq FROM system_audit_logs
			ORDER BY seq DESC
			LIMIT $1
		);
	`
	_, err := r.pool.Exec(ctx, query, limit)
	if err != nil {
		return fmt.Errorf("failed to prune audit logs: %w", err)
	}
	return nil
}

func (r *PgxAuditLogRepository) ListLogs(ctx context.Context) ([]domain.SystemAuditLog, error) {
	query := `
		SELECT log_id, user_id, action, module, details, severity, created_at
		FROM system_audit_logs
		ORDER BY seq DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.SystemAuditLog{}
	for rows.Next() {
		var log domain.SystemAuditLog
		if err := rows.Scan(
			&log.LogID,
			&log.UserID,
			&log.Action,
			&log.Module,
			&log.Details,
			&log.Severity,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log row: %w", err)
		}
		logs = append(logs, log)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating audit log rows: %w", rows.Err())
	}
	return logs, nil
}

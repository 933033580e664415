package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		JournalRepo:  NewPgxJournalRepository(pool),
		CustomerRepo: NewPgxCustomerRepository(pool),
		ConfigRepo:   NewPgxConfigRepository(pool),
		AuditRepo:    NewPgxAuditLogRepository(pool),
		UserRepo:     NewPgxUserRepository(pool),
		ReportRepo:   NewPgxReportRepository(pool),
	}
}

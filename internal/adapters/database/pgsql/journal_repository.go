package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
)

// journalColumns is the scan order shared by every journal query.
const journalColumns = `entry_id, entry_date, description, category, debit, credit,
	currency_code, rate, customer_id, customer_name, agent_name, commission,
	is_suspicious, risk_score, risk_reason, is_deleted, is_reversal,
	reversed_from_id, reversed_by_id, created_at, created_by`

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for ledger entries.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(
		&e.EntryID,
		&e.EntryDate,
		&e.Description,
		&e.Category,
		&e.Debit,
		&e.Credit,
		&e.CurrencyCode,
		&e.Rate,
		&e.CustomerID,
		&e.CustomerName,
		&e.AgentName,
		&e.Commission,
		&e.IsSuspicious,
		&e.RiskScore,
		&e.RiskReason,
		&e.IsDeleted,
		&e.IsReversal,
		&e.ReversedFromID,
		&e.ReversedByID,
		&e.CreatedAt,
		&e.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEntries(rows pgx.Rows) ([]domain.JournalEntry, error) {
	defer rows.Close()
	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", rows.Err())
	}
	return entries, nil
}

// SaveEntry appends a new entry. The seq column is assigned by the database
// and is the listing order.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (entry_id, entry_date, description, category, debit, credit,
			currency_code, rate, customer_id, customer_name, agent_name, commission,
			is_suspicious, risk_score, risk_reason, is_deleted, is_reversal,
			reversed_from_id, reversed_by_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.pool.Exec(ctx, query,
		entry.EntryID,
		entry.EntryDate,
		entry.Description,
		entry.Category,
		entry.Debit,
		entry.Credit,
		entry.CurrencyCode,
		entry.Rate,
		entry.CustomerID,
		entry.CustomerName,
		entry.AgentName,
		entry.Commission,
		entry.IsSuspicious,
		entry.RiskScore,
		entry.RiskReason,
		entry.IsDeleted,
		entry.IsReversal,
		entry.ReversedFromID,
		entry.ReversedByID,
		entry.CreatedAt,
		entry.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a specific entry, tombstoned or not.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries WHERE entry_id = $1;`, journalColumns)
	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntries retrieves entries most-recently-appended first.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, includeDeleted bool) ([]domain.JournalEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM journal_entries`, journalColumns)
	if !includeDeleted {
		query += ` WHERE is_deleted = FALSE`
	}
	query += ` ORDER BY seq DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	return collectEntries(rows)
}

// ListEntriesByCategories retrieves non-deleted entries restricted to the
// given categories and optional date window, newest first.
func (r *PgxJournalRepository) ListEntriesByCategories(ctx context.Context, categories []domain.EntryCategory, from, to *time.Time) ([]domain.JournalEntry, error) {
	if len(categories) == 0 {
		return []domain.JournalEntry{}, nil
	}

	codes := make([]string, len(categories))
	for i, c := range categories {
		codes[i] = string(c)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM journal_entries WHERE is_deleted = FALSE AND category = ANY($1)`, journalColumns)
	args := []any{codes}
	if from != nil {
		args = append(args, *from)
		fmt.Fprintf(&sb, ` AND entry_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		fmt.Fprintf(&sb, ` AND entry_date <= $%d`, len(args))
	}
	sb.WriteString(` ORDER BY seq DESC;`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries by category: %w", err)
	}
	return collectEntries(rows)
}

// ListSuspiciousEntries retrieves non-deleted entries flagged at append time,
// newest first.
func (r *PgxJournalRepository) ListSuspiciousEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `SELECT %s FROM journal_entries WHERE is_deleted = FALSE AND is_suspicious = TRUE`, journalColumns)
	args := []any{}
	if from != nil {
		args = append(args, *from)
		fmt.Fprintf(&sb, ` AND entry_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		fmt.Fprintf(&sb, ` AND entry_date <= $%d`, len(args))
	}
	sb.WriteString(` ORDER BY seq DESC;`)

	rows, err := r.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suspicious journal entries: %w", err)
	}
	return collectEntries(rows)
}

// MarkEntryDeleted flips the tombstone flag, leaving every other column
// untouched. The returned flag reports whether the entry was already deleted.
func (r *PgxJournalRepository) MarkEntryDeleted(ctx context.Context, entryID string) (bool, error) {
	query := `
		UPDATE journal_entries
		SET is_deleted = TRUE
		WHERE entry_id = $1 AND is_deleted = FALSE;
	`
	tag, err := r.pool.Exec(ctx, query, entryID)
	if err != nil {
		return false, fmt.Errorf("failed to mark journal entry %s deleted: %w", entryID, err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	// Nothing updated: either already tombstoned or the id is unknown.
	var exists bool
	err = r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM journal_entries WHERE entry_id = $1);`, entryID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check journal entry %s: %w", entryID, err)
	}
	if !exists {
		return false, apperrors.ErrNotFound
	}
	return true, nil
}

// SaveReversal appends the compensating entry and links the original's
// reversed_by_id in one database transaction, so a crash can never leave a
// reversal without its back-link.
func (r *PgxJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, originalEntryID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	insertQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, description, category, debit, credit,
			currency_code, rate, customer_id, customer_name, agent_name, commission,
			is_suspicious, risk_score, risk_reason, is_deleted, is_reversal,
			reversed_from_id, reversed_by_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, insertQuery,
		reversal.EntryID,
		reversal.EntryDate,
		reversal.Description,
		reversal.Category,
		reversal.Debit,
		reversal.Credit,
		reversal.CurrencyCode,
		reversal.Rate,
		reversal.CustomerID,
		reversal.CustomerName,
		reversal.AgentName,
		reversal.Commission,
		reversal.IsSuspicious,
		reversal.RiskScore,
		reversal.RiskReason,
		reversal.IsDeleted,
		reversal.IsReversal,
		reversal.ReversedFromID,
		reversal.ReversedByID,
		reversal.CreatedAt,
		reversal.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert reversal entry %s: %w", reversal.EntryID, err)
	}

	linkQuery := `
		UPDATE journal_entries
		SET reversed_by_id = $1
		WHERE entry_id = $2 AND reversed_by_id IS NULL;
	`
	tag, err := tx.Exec(ctx, linkQuery, reversal.EntryID, originalEntryID)
	if err != nil {
		return fmt.Errorf("failed to link original entry %s: %w", originalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		// Either the original vanished or a concurrent reversal won the race.
		return fmt.Errorf("%w: entry %s already reversed or missing", apperrors.ErrConflict, originalEntryID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reversal for entry %s: %w", originalEntryID, err)
	}
	return nil
}

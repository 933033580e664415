package repositories

import (
	"context"
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindEntryByID retrieves a specific entry by id, including tombstoned
	// entries. Returns apperrors.ErrNotFound when no such entry exists.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves entries most-recently-appended first. Tombstoned
	// entries are excluded unless includeDeleted is true. This insertion
	// order is the only ordering the journal guarantees.
	ListEntries(ctx context.Context, includeDeleted bool) ([]domain.JournalEntry, error)

	// ListEntriesByCategories retrieves non-deleted entries restricted to the
	// given categories and optional inclusive date window, newest first.
	ListEntriesByCategories(ctx context.Context, categories []domain.EntryCategory, from, to *time.Time) ([]domain.JournalEntry, error)

	// ListSuspiciousEntries retrieves non-deleted entries flagged suspicious
	// at append time, newest first.
	ListSuspiciousEntries(ctx context.Context, from, to *time.Time) ([]domain.JournalEntry, error)
}

// JournalWriter defines write operations for journal data. The underlying
// store never rewrites financial fields; the only in-place mutations are the
// tombstone flag and the reversal back-link.
type JournalWriter interface {
	// SaveEntry appends a new entry.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// MarkEntryDeleted sets the tombstone flag on an entry, leaving every
	// other field unchanged. Returns apperrors.ErrNotFound for an unknown id
	// and the flipped flag state for idempotency checks.
	MarkEntryDeleted(ctx context.Context, entryID string) (alreadyDeleted bool, err error)

	// SaveReversal appends the compensating entry and links the original's
	// ReversedByID in a single database transaction.
	SaveReversal(ctx context.Context, reversal domain.JournalEntry, originalEntryID string) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

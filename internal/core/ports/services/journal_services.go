package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// JournalSvcFacade is the append-only ledger core. Entries are created once,
// optionally tombstoned, and optionally compensated by reversal entries;
// financial fields are never mutated after creation.
type JournalSvcFacade interface {
	// Append validates and persists a new entry, then records an audit log
	// entry (WARNING severity above the large-value threshold).
	Append(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error)

	// List returns entries most-recently-appended first, excluding tombstoned
	// entries unless includeDeleted is set.
	List(ctx context.Context, includeDeleted bool) ([]domain.JournalEntry, error)

	// GetByID returns a single entry, tombstoned or not.
	GetByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// SoftDelete tombstones an entry in place. Unknown ids yield
	// apperrors.ErrNotFound; repeating the call is an idempotent no-op.
	SoftDelete(ctx context.Context, entryID string, actingUserID string) error

	// Reverse appends a compensating entry (debit and credit swapped) for the
	// given original and links the original to it. The original entry is
	// otherwise untouched and stays visible in the ledger.
	Reverse(ctx context.Context, entryID string, actingUserID string) (*domain.JournalEntry, error)
}

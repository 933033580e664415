package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// SummarySvcFacade derives per-currency running totals from the journal.
// The fold is pure and stateless: fully recomputed on every call from the
// non-deleted entry history, never incrementally maintained.
type SummarySvcFacade interface {
	Summarize(ctx context.Context) ([]domain.CurrencySummary, error)

	// SummarizeCurrency folds a single currency. A currency with no entries
	// yields a zero summary, not an error.
	SummarizeCurrency(ctx context.Context, currencyCode string) (*domain.CurrencySummary, error)
}

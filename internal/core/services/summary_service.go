package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
)

// summaryService recomputes per-currency totals from the journal on every
// call. The fold only sees non-deleted entries, so a tombstoned entry drops
// out of the totals and a reversal pair nets to zero without either record
// being rewritten.
type summaryService struct {
	journalRepo portsrepo.JournalReader
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(journalRepo portsrepo.JournalReader) portssvc.SummarySvcFacade {
	return &summaryService{journalRepo: journalRepo}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// Summarize folds the non-deleted journal into one summary per currency,
// sorted by currency code for stable output.
func (s *summaryService) Summarize(ctx context.Context) ([]domain.CurrencySummary, error) {
	entries, err := s.journalRepo.ListEntries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for summary: %w", err)
	}

	byCurrency := foldEntries(entries)

	codes := make([]string, 0, len(byCurrency))
	for code := range byCurrency {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	summaries := make([]domain.CurrencySummary, 0, len(codes))
	for _, code := range codes {
		summaries = append(summaries, byCurrency[code])
	}
	return summaries, nil
}

// SummarizeCurrency folds a single currency. A currency with no entries
// yields a zero summary.
func (s *summaryService) SummarizeCurrency(ctx context.Context, currencyCode string) (*domain.CurrencySummary, error) {
	entries, err := s.journalRepo.ListEntries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for summary: %w", err)
	}

	byCurrency := foldEntries(entries)
	if summary, ok := byCurrency[currencyCode]; ok {
		return &summary, nil
	}
	return &domain.CurrencySummary{
		CurrencyCode: currencyCode,
		TotalIn:      decimal.Zero,
		TotalOut:     decimal.Zero,
		Balance:      decimal.Zero,
	}, nil
}

func foldEntries(entries []domain.JournalEntry) map[string]domain.CurrencySummary {
	byCurrency := make(map[string]domain.CurrencySummary)
	for i := range entries {
		e := &entries[i]
		summary, ok := byCurrency[e.CurrencyCode]
		if !ok {
			summary = domain.CurrencySummary{
				CurrencyCode: e.CurrencyCode,
				TotalIn:      decimal.Zero,
				TotalOut:     decimal.Zero,
				Balance:      decimal.Zero,
			}
		}
		summary.TotalIn = summary.TotalIn.Add(e.Debit)
		summary.TotalOut = summary.TotalOut.Add(e.Credit)
		summary.Balance = summary.TotalIn.Sub(summary.TotalOut)
		byCurrency[e.CurrencyCode] = summary
	}
	return byCurrency
}

package dto

import (
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySummaryResponse defines the data returned for one currency's
// running totals.
type CurrencySummaryResponse struct {
	Currency string          `json:"currency"`
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToCurrencySummaryResponse converts a domain.CurrencySummary to its DTO.
func ToCurrencySummaryResponse(s *domain.CurrencySummary) CurrencySummaryResponse {
	return CurrencySummaryResponse{
		Currency: s.CurrencyCode,
		TotalIn:  s.TotalIn,
		TotalOut: s.TotalOut,
		Balance:  s.Balance,
	}
}

// ToCurrencySummaryResponses converts a slice of summaries to DTOs.
func ToCurrencySummaryResponses(summaries []domain.CurrencySummary) []CurrencySummaryResponse {
	responses := make([]CurrencySummaryResponse, len(summaries))
	for i := range summaries {
		responses[i] = ToCurrencySummaryResponse(&summaries[i])
	}
	return responses
}

package dto

import (
	"time"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is the payload for appending a journal entry. Direction
// plus a single amount makes the "exactly one of debit/credit" invariant
// structural at the API boundary; the service maps it onto the two-column
// storage model.
type CreateEntryRequest struct {
	Date        *time.Time             `json:"date"` // defaults to now (UTC)
	Description string                 `json:"description" binding:"required"`
	Category    domain.EntryCategory   `json:"category" binding:"required"`
	Direction   domain.EntryDirection  `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Currency    string                 `json:"currency" binding:"required,len=3,uppercase"`
	Rate        decimal.Decimal        `json:"rate"`
	CustomerID  *string                `json:"customerID"`

	// Hawala-only fields.
	AgentName  string          `json:"agentName"`
	Commission decimal.Decimal `json:"commission"`

	// Set by the server from the AML verdict, never by the caller.
	IsSuspicious bool   `json:"-"`
	RiskScore    *int32 `json:"-"`
	RiskReason   string `json:"-"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID        string                `json:"entryID"`
	Date           time.Time             `json:"date"`
	Description    string                `json:"description"`
	Category       domain.EntryCategory  `json:"category"`
	Debit          decimal.Decimal       `json:"debit"`
	Credit         decimal.Decimal       `json:"credit"`
	Currency       string                `json:"currency"`
	Rate           decimal.Decimal       `json:"rate"`
	CustomerID     *string               `json:"customerID,omitempty"`
	CustomerName   string                `json:"customerName,omitempty"`
	AgentName      string                `json:"agentName,omitempty"`
	Commission     decimal.Decimal       `json:"commission"`
	IsSuspicious   bool                  `json:"isSuspicious"`
	RiskScore      *int32                `json:"riskScore,omitempty"`
	IsDeleted      bool                  `json:"isDeleted"`
	IsReversal     bool                  `json:"isReversal"`
	ReversedFromID *string               `json:"reversedFromID,omitempty"`
	ReversedByID   *string               `json:"reversedByID,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	CreatedBy      string                `json:"createdBy"`
}

// ListEntriesResponse wraps a journal listing.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.JournalEntry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:        e.EntryID,
		Date:           e.EntryDate,
		Description:    e.Description,
		Category:       e.Category,
		Debit:          e.Debit,
		Credit:         e.Credit,
		Currency:       e.CurrencyCode,
		Rate:           e.Rate,
		CustomerID:     e.CustomerID,
		CustomerName:   e.CustomerName,
		AgentName:      e.AgentName,
		Commission:     e.Commission,
		IsSuspicious:   e.IsSuspicious,
		RiskScore:      e.RiskScore,
		IsDeleted:      e.IsDeleted,
		IsReversal:     e.IsReversal,
		ReversedFromID: e.ReversedFromID,
		ReversedByID:   e.ReversedByID,
		CreatedAt:      e.CreatedAt,
		CreatedBy:      e.CreatedBy,
	}
}

// ToEntryResponses converts a slice of entries to response DTOs.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}

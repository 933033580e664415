package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryCategory is the closed set of transaction-type tags carried by a
// journal entry. The category determines how an entry is bucketed in reports;
// it does not change the debit/credit sign convention.
type EntryCategory string

const (
	CashIn           EntryCategory = "CASH_IN"
	CashOut          EntryCategory = "CASH_OUT"
	CheckIn          EntryCategory = "CHECK_IN"
	CheckOut         EntryCategory = "CHECK_OUT"
	InternalTransfer EntryCategory = "INTERNAL_TRANSFER"
	Expense          EntryCategory = "EXPENSE"
	ExchangeBuy      EntryCategory = "EXCHANGE_BUY"
	ExchangeSell     EntryCategory = "EXCHANGE_SELL"
	HawalaSend       EntryCategory = "HAWALA_SEND"
	HawalaReceive    EntryCategory = "HAWALA_RECEIVE"
	HawalaCancel     EntryCategory = "HAWALA_CANCEL"
	TaxPayment       EntryCategory = "TAX_PAYMENT"
	CapitalDeposit   EntryCategory = "CAPITAL_DEPOSIT"
	CBAuctionBuy     EntryCategory = "CB_AUCTION_BUY"
)

// EntryDirection tags which side of an entry carries the amount. Exposed at
// the API boundary so "exactly one of debit/credit" is structural rather than
// a convention callers can break.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// validCategories is the membership set for EntryCategory checks.
var validCategories = map[EntryCategory]struct{}{
	CashIn: {}, CashOut: {}, CheckIn: {}, CheckOut: {},
	InternalTransfer: {}, Expense: {}, ExchangeBuy: {}, ExchangeSell: {},
	HawalaSend: {}, HawalaReceive: {}, HawalaCancel: {},
	TaxPayment: {}, CapitalDeposit: {}, CBAuctionBuy: {},
}

// IsValid reports whether c is a known entry category.
func (c EntryCategory) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// IsHawala reports whether the category belongs to the hawala family, which
// is the only family that carries agent/commission fields.
func (c EntryCategory) IsHawala() bool {
	return c == HawalaSend || c == HawalaReceive || c == HawalaCancel
}

// JournalEntry is a single monetary movement in the append-only ledger.
//
// Entries are immutable after creation: no operation rewrites the financial
// fields. SoftDelete flips IsDeleted in place and Reverse appends a separate
// compensating entry; both preserve the full history.
type JournalEntry struct {
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"` // time of the economic event
	Description string          `json:"description"`
	Category    EntryCategory   `json:"category"`
	Debit       decimal.Decimal `json:"debit"`  // money received into the business
	Credit      decimal.Decimal `json:"credit"` // money paid out by the business

	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate"` // informational rate to base currency at entry time

	// Soft link to the customer registry. CustomerName is a denormalized
	// snapshot so reports stay legible even if the customer record is later
	// edited or removed.
	CustomerID   *string `json:"customerID,omitempty"`
	CustomerName string  `json:"customerName,omitempty"`

	// Hawala-only fields.
	AgentName  string          `json:"agentName,omitempty"`
	Commission decimal.Decimal `json:"commission"`

	// AML verdict frozen at append time for exchange/hawala entries.
	IsSuspicious bool   `json:"isSuspicious"`
	RiskScore    *int32 `json:"riskScore,omitempty"`
	RiskReason   string `json:"riskReason,omitempty"`

	// IsDeleted is the tombstone flag; the record stays physically present.
	IsDeleted bool `json:"isDeleted"`

	// IsReversal marks a compensating entry; ReversedFromID points at the
	// entry it compensates. ReversedByID is set on the original once a
	// reversal for it exists, so "was this reversed" is an O(1) lookup.
	IsReversal     bool    `json:"isReversal"`
	ReversedFromID *string `json:"reversedFromID,omitempty"`
	ReversedByID   *string `json:"reversedByID,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"` // UserID reference
}

// Amount returns the single nonzero magnitude of the entry.
func (e *JournalEntry) Amount() decimal.Decimal {
	if e.Debit.IsZero() {
		return e.Credit
	}
	return e.Debit
}

// Direction returns which side of the entry carries the amount.
func (e *JournalEntry) Direction() EntryDirection {
	if e.Debit.IsZero() {
		return Credit
	}
	return Debit
}

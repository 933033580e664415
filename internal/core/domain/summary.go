package domain

import "github.com/shopspring/decimal"

// CurrencySummary holds the running totals for one currency, derived by
// folding over the non-deleted journal history. There is no opening balance:
// the implicit start for every currency is zero.
type CurrencySummary struct {
	CurrencyCode string          `json:"currencyCode"`
	TotalIn      decimal.Decimal `json:"totalIn"`  // sum of debits
	TotalOut     decimal.Decimal `json:"totalOut"` // sum of credits
	Balance      decimal.Decimal `json:"balance"`  // TotalIn - TotalOut
}

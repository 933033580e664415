package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one indicative market rate quoted against the local
// currency, shown on the exchange desk. Informational only; journal entries
// freeze their own rate at append time.
type ExchangeRate struct {
	Pair      string          `json:"pair"` // e.g. "USD/AFN"
	Rate      decimal.Decimal `json:"rate"`
	Change    decimal.Decimal `json:"change"` // day-over-day delta
	UpdatedAt time.Time       `json:"updatedAt"`
}

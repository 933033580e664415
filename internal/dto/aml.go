package dto

import (
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AnalyzeTransactionRequest carries the proposed transaction fields sent to
// the risk-scoring oracle.
type AnalyzeTransactionRequest struct {
	CustomerID   string               `json:"customerID"`
	CustomerName string               `json:"customerName"`
	Category     domain.EntryCategory `json:"category" binding:"required"`
	Amount       decimal.Decimal      `json:"amount" binding:"required"`
	Currency     string               `json:"currency" binding:"required,len=3,uppercase"`
	Rate         decimal.Decimal      `json:"rate"`
	Counterparty string               `json:"counterparty"` // hawala agent, if any
}

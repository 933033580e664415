package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

func TestEntryCategory_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		category domain.EntryCategory
		want     bool
	}{
		{name: "cash in", category: domain.CashIn, want: true},
		{name: "hawala send", category: domain.HawalaSend, want: true},
		{name: "central bank auction", category: domain.CBAuctionBuy, want: true},
		{name: "unknown", category: "LOAN", want: false},
		{name: "empty", category: "", want: false},
		{name: "lowercase variant", category: "cash_in", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestEntryCategory_IsHawala(t *testing.T) {
	assert.True(t, domain.HawalaSend.IsHawala())
	assert.True(t, domain.HawalaReceive.IsHawala())
	assert.True(t, domain.HawalaCancel.IsHawala())
	assert.False(t, domain.CashIn.IsHawala())
	assert.False(t, domain.ExchangeBuy.IsHawala())
}

func TestJournalEntry_AmountAndDirection(t *testing.T) {
	debitEntry := domain.JournalEntry{
		Debit:  decimal.NewFromInt(250),
		Credit: decimal.Zero,
	}
	assert.True(t, debitEntry.Amount().Equal(decimal.NewFromInt(250)))
	assert.Equal(t, domain.Debit, debitEntry.Direction())

	creditEntry := domain.JournalEntry{
		Debit:  decimal.Zero,
		Credit: decimal.NewFromInt(90),
	}
	assert.True(t, creditEntry.Amount().Equal(decimal.NewFromInt(90)))
	assert.Equal(t, domain.Credit, creditEntry.Direction())
}

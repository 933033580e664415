package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

func TestSystemConfig_ActiveCurrency(t *testing.T) {
	cfg := domain.SystemConfig{
		Currencies: []domain.CurrencyConfig{
			{Code: "USD", IsBase: true, Active: true},
			{Code: "AFN", Active: true},
			{Code: "IRR", Active: false},
		},
	}

	_, ok := cfg.ActiveCurrency("USD")
	assert.True(t, ok)

	_, ok = cfg.ActiveCurrency("IRR")
	assert.False(t, ok, "inactive currency must not resolve")

	_, ok = cfg.ActiveCurrency("JPY")
	assert.False(t, ok)
}

func TestSystemConfig_BaseCurrency(t *testing.T) {
	cfg := domain.SystemConfig{
		Currencies: []domain.CurrencyConfig{
			{Code: "AFN", IsBase: true, Active: true},
		},
	}
	assert.Equal(t, "AFN", cfg.BaseCurrency())

	empty := domain.SystemConfig{}
	assert.Equal(t, "USD", empty.BaseCurrency(), "missing base flag defaults to USD")
}

func TestDefaultSystemConfig(t *testing.T) {
	cfg := domain.DefaultSystemConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "USD", cfg.BaseCurrency())
	assert.NotEmpty(t, cfg.Company.License)
	assert.NotEmpty(t, cfg.Branches)

	for _, cur := range cfg.Currencies {
		assert.True(t, cur.Active, "default currencies start active")
	}
}

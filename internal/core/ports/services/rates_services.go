package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// RatesSvcFacade serves indicative market rates for the exchange desk.
type RatesSvcFacade interface {
	Live(ctx context.Context) ([]domain.ExchangeRate, error)
}

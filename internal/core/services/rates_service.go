package services

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
)

// rateRefreshInterval is how long a quoted set of rates stays fixed before
// the next call re-jitters it.
const rateRefreshInterval = 30 * time.Second

// baselineRates are the midpoints the indicative quotes drift around, all
// against AFN.
var baselineRates = []struct {
	pair string
	mid  float64
}{
	{"USD/AFN", 74.20},
	{"EUR/AFN", 80.55},
	{"PKR/AFN", 0.265},
	{"USD/PKR", 278.50},
}

// ratesService serves indicative desk rates. There is no upstream feed; the
// quotes drift around fixed midpoints with a small jitter, the way the desk
// board behaved before a live feed existed. Journal entries never read these:
// they freeze their own rate at append time.
type ratesService struct {
	mu        sync.Mutex
	rng       *rand.Rand
	last      []domain.ExchangeRate
	refreshed time.Time
}

// NewRatesService creates a new RatesService.
func NewRatesService() portssvc.RatesSvcFacade {
	return &ratesService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var _ portssvc.RatesSvcFacade = (*ratesService)(nil)

// Live returns the current indicative rates, re-jittered at most once per
// refresh interval.
func (s *ratesService) Live(_ context.Context) ([]domain.ExchangeRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if s.last != nil && now.Sub(s.refreshed) < rateRefreshInterval {
		out := make([]domain.ExchangeRate, len(s.last))
		copy(out, s.last)
		return out, nil
	}

	rates := make([]domain.ExchangeRate, 0, len(baselineRates))
	for _, base := range baselineRates {
		// jitter within +-0.5% of the midpoint
		jitter := (s.rng.Float64() - 0.5) * 0.01 * base.mid
		rate := decimal.NewFromFloat(base.mid + jitter).Round(4)
		change := decimal.NewFromFloat(jitter).Round(4)
		rates = append(rates, domain.ExchangeRate{
			Pair:      base.pair,
			Rate:      rate,
			Change:    change,
			UpdatedAt: now,
		})
	}

	s.last = rates
	s.refreshed = now
	out := make([]domain.ExchangeRate, len(rates))
	copy(out, rates)
	return out, nil
}

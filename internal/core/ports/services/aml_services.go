package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// RiskOracle is the external AI scoring service consulted per transaction.
// Implementations live in internal/adapters; any failure is recoverable and
// must make the AML service fall back to its local rule.
type RiskOracle interface {
	Score(ctx context.Context, req dto.AnalyzeTransactionRequest) (*domain.RiskAssessment, error)
}

// AMLSvcFacade produces a risk verdict for a proposed transaction. It never
// fails: when the oracle is unreachable it degrades to a deterministic
// threshold rule so the write path is never blocked.
type AMLSvcFacade interface {
	Analyze(ctx context.Context, req dto.AnalyzeTransactionRequest) (*domain.RiskAssessment, error)
}

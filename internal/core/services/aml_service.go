package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

// fallbackThreshold is the amount above which the local rule flags a
// transaction when the scoring oracle is unreachable.
var fallbackThreshold = decimal.NewFromInt(10000)

const (
	fallbackSuspiciousScore int32 = 85
	fallbackClearScore      int32 = 10
)

// amlService produces a risk verdict per proposed transaction. It consults
// the external scoring oracle and degrades to a deterministic threshold rule
// on any oracle failure, so Analyze itself never fails and never blocks the
// write path.
type amlService struct {
	oracle portssvc.RiskOracle
}

// NewAMLService creates a new AMLService.
func NewAMLService(oracle portssvc.RiskOracle) portssvc.AMLSvcFacade {
	return &amlService{oracle: oracle}
}

var _ portssvc.AMLSvcFacade = (*amlService)(nil)

// Analyze scores a proposed transaction. A nil oracle or any oracle error
// falls back to the local rule; the verdict says which path produced it.
func (s *amlService) Analyze(ctx context.Context, req dto.AnalyzeTransactionRequest) (*domain.RiskAssessment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.oracle != nil {
		assessment, err := s.oracle.Score(ctx, req)
		if err == nil {
			assessment.OracleStatus = domain.OracleOnline
			logger.Info("Risk verdict from scoring oracle",
				slog.Int("risk_score", int(assessment.RiskScore)),
				slog.Bool("suspicious", assessment.IsSuspicious))
			return assessment, nil
		}
		logger.Warn("Risk oracle unreachable, using fallback rule",
			slog.String("error", err.Error()))
	}

	return s.fallback(req), nil
}

// fallback is the deterministic local rule: flag anything above the threshold
// with a fixed high score, clear everything else with a fixed low score.
func (s *amlService) fallback(req dto.AnalyzeTransactionRequest) *domain.RiskAssessment {
	if req.Amount.GreaterThan(fallbackThreshold) {
		return &domain.RiskAssessment{
			IsSuspicious: true,
			RiskScore:    fallbackSuspiciousScore,
			Reasoning: fmt.Sprintf("Offline rule: amount %s %s exceeds the %s reporting threshold",
				req.Amount.String(), req.Currency, fallbackThreshold.String()),
			SuggestedAction: "Hold for compliance review and file a threshold report",
			FlaggedFields: []domain.FlaggedField{
				{Field: "amount", Reason: "exceeds offline threshold", Severity: "HIGH"},
			},
			OracleStatus: domain.OracleOffline,
		}
	}
	return &domain.RiskAssessment{
		IsSuspicious:    false,
		RiskScore:       fallbackClearScore,
		Reasoning:       "Offline rule: amount below reporting threshold",
		SuggestedAction: "Proceed",
		OracleStatus:    domain.OracleOffline,
	}
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

// ErrStaleConfigVersion is returned when an update carries a version that no
// longer matches the stored record.
var ErrStaleConfigVersion = errors.New("config version is stale")

// configService serves the singleton system configuration. The record is
// cached in memory after the first read; Update replaces the whole record and
// refreshes the cache. The version field gives stale concurrent editors a
// deterministic rejection.
type configService struct {
	configRepo portsrepo.ConfigRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade

	mu     sync.RWMutex
	cached *domain.SystemConfig
}

// NewConfigService creates a new ConfigService.
func NewConfigService(configRepo portsrepo.ConfigRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.ConfigSvcFacade {
	return &configService{configRepo: configRepo, auditSvc: auditSvc}
}

var _ portssvc.ConfigSvcFacade = (*configService)(nil)

// Get returns the current configuration, seeding the documented default on
// first access.
func (s *configService) Get(ctx context.Context) (*domain.SystemConfig, error) {
	s.mu.RLock()
	if s.cached != nil {
		cfg := *s.cached
		s.mu.RUnlock()
		return &cfg, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached != nil {
		cfg := *s.cached
		return &cfg, nil
	}

	cfg, err := s.configRepo.FindConfig(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load system config: %w", err)
		}
		seeded := domain.DefaultSystemConfig()
		if err := s.configRepo.SaveConfig(ctx, seeded); err != nil {
			return nil, fmt.Errorf("failed to seed default system config: %w", err)
		}
		middleware.GetLoggerFromCtx(ctx).Info("Seeded default system config")
		cfg = &seeded
	}

	s.cached = cfg
	out := *cfg
	return &out, nil
}

// Update replaces the whole configuration record. The request version must
// match the stored version; the stored record is saved with version+1.
func (s *configService) Update(ctx context.Context, req dto.UpdateConfigRequest, actingUserID string) (*domain.SystemConfig, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.Version != current.Version {
		return nil, fmt.Errorf("%w: %w: have %d, stored %d",
			apperrors.ErrConflict, ErrStaleConfigVersion, req.Version, current.Version)
	}

	updated := req.ToSystemConfig()
	updated.Version = current.Version + 1

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.configRepo.SaveConfig(ctx, updated); err != nil {
		logger.Error("Failed to save system config", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save system config: %w", err)
	}
	s.cached = &updated

	if err := s.auditSvc.Record(ctx, actingUserID, "CONFIG_UPDATE",
		fmt.Sprintf("Replaced system config (version %d)", updated.Version),
		domain.SeverityInfo); err != nil {
		logger.Error("Failed to write audit log entry", slog.String("error", err.Error()))
	}

	logger.Info("System config updated", slog.Int("version", updated.Version))
	out := updated
	return &out, nil
}

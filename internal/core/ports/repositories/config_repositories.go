package repositories

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// ConfigRepositoryFacade persists the singleton system configuration as a
// whole record. Returns apperrors.ErrNotFound from FindConfig when no row has
// been seeded yet.
type ConfigRepositoryFacade interface {
	FindConfig(ctx context.Context) (*domain.SystemConfig, error)
	SaveConfig(ctx context.Context, cfg domain.SystemConfig) error
}

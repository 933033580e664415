package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// ConfigSvcFacade is the singleton system configuration store. Get seeds a
// documented default on first access; Update replaces the whole record after
// a version check.
type ConfigSvcFacade interface {
	Get(ctx context.Context) (*domain.SystemConfig, error)
	Update(ctx context.Context, req dto.UpdateConfigRequest, actingUserID string) (*domain.SystemConfig, error)
}

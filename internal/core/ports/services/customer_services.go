package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// CustomerSvcFacade is the KYC customer registry.
type CustomerSvcFacade interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)
	GetByID(ctx context.Context, customerID string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)

	// Update replaces the full record by id.
	Update(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actingUserID string) (*domain.Customer, error)
}

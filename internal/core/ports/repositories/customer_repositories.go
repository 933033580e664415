package repositories

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// CustomerReader defines read operations for the customer registry.
type CustomerReader interface {
	// FindCustomerByID returns apperrors.ErrNotFound when no record exists.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers, most recently registered first.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for the customer registry.
type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer replaces the full record by id. Returns
	// apperrors.ErrNotFound when no record exists.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines the customer repository interfaces.
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

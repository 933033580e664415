package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
	"github.com/sarafcore/sarafcore_backend/internal/middleware"
)

// customerService owns the KYC registry. New profiles default to PENDING
// verification and LOW risk until compliance reviews them.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, auditSvc: auditSvc}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// Create registers a new customer profile.
func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:   uuid.NewString(),
		NationalID:   req.NationalID,
		FullName:     req.FullName,
		FatherName:   req.FatherName,
		Phone:        req.Phone,
		KYCStatus:    req.KYCStatus,
		RiskLevel:    req.RiskLevel,
		RegisteredAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if customer.KYCStatus == "" {
		customer.KYCStatus = domain.KYCPending
	}
	if customer.RiskLevel == "" {
		customer.RiskLevel = domain.RiskLow
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	s.audit(ctx, creatorUserID, "CUSTOMER_REG",
		fmt.Sprintf("Registered customer %s (%s)", customer.FullName, customer.CustomerID))

	logger.Info("Customer registered", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetByID fetches a single customer profile.
func (s *customerService) GetByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find customer",
				slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return customer, nil
}

// List returns all customers, most recently registered first.
func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

// Update replaces the full customer record. The journal's denormalized
// snapshots are deliberately not touched; past entries keep the name they
// were recorded with.
func (s *customerService) Update(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, actingUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}

	updated := *existing
	updated.NationalID = req.NationalID
	updated.FullName = req.FullName
	updated.FatherName = req.FatherName
	updated.Phone = req.Phone
	updated.KYCStatus = req.KYCStatus
	updated.RiskLevel = req.RiskLevel
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = actingUserID

	if err := s.customerRepo.UpdateCustomer(ctx, updated); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer %s: %w", customerID, err)
	}

	s.audit(ctx, actingUserID, "CUSTOMER_UPDATE",
		fmt.Sprintf("Updated customer %s (%s)", updated.FullName, updated.CustomerID))

	logger.Info("Customer updated", slog.String("customer_id", customerID))
	return &updated, nil
}

func (s *customerService) audit(ctx context.Context, userID, action, details string) {
	if err := s.auditSvc.Record(ctx, userID, action, details, domain.SeverityInfo); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit log entry",
			slog.String("error", err.Error()),
			slog.String("action", action))
	}
}

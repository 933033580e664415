package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/sarafcore/sarafcore_backend/internal/apperrors"
	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
	"github.com/sarafcore/sarafcore_backend/internal/core/services"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockAuditSvc     *MockAuditService
	service          portssvc.CustomerSvcFacade
	userID           string
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.mockAuditSvc = new(MockAuditService)
	s.service = services.NewCustomerService(s.mockCustomerRepo, s.mockAuditSvc)
	s.userID = uuid.NewString()
}

func (s *CustomerServiceTestSuite) TestCreateDefaultsToPendingLowRisk() {
	ctx := context.Background()

	var saved domain.Customer
	s.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Customer)
		}).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "CUSTOMER_REG", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	customer, err := s.service.Create(ctx, dto.CreateCustomerRequest{
		NationalID: "1399-0101-12345",
		FullName:   "Ahmad Rahimi",
		FatherName: "Mohammad",
		Phone:      "+93 700 111 222",
	}, s.userID)

	s.Require().NoError(err)
	s.NotEmpty(customer.CustomerID)
	s.Equal(domain.KYCPending, saved.KYCStatus)
	s.Equal(domain.RiskLow, saved.RiskLevel)
	s.Equal(s.userID, saved.CreatedBy)
	s.False(saved.RegisteredAt.IsZero())
}

func (s *CustomerServiceTestSuite) TestCreateKeepsExplicitStatus() {
	ctx := context.Background()

	s.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "CUSTOMER_REG", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	customer, err := s.service.Create(ctx, dto.CreateCustomerRequest{
		NationalID: "1399-0101-99999",
		FullName:   "Farid Noori",
		KYCStatus:  domain.KYCApproved,
		RiskLevel:  domain.RiskHigh,
	}, s.userID)

	s.Require().NoError(err)
	s.Equal(domain.KYCApproved, customer.KYCStatus)
	s.Equal(domain.RiskHigh, customer.RiskLevel)
}

func (s *CustomerServiceTestSuite) TestUpdateReplacesRecord() {
	ctx := context.Background()
	existing := &domain.Customer{
		CustomerID: uuid.NewString(),
		NationalID: "old-id",
		FullName:   "Old Name",
		KYCStatus:  domain.KYCPending,
		RiskLevel:  domain.RiskLow,
	}

	s.mockCustomerRepo.On("FindCustomerByID", ctx, existing.CustomerID).Return(existing, nil).Once()

	var updated domain.Customer
	s.mockCustomerRepo.On("UpdateCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Customer)
		}).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "CUSTOMER_UPDATE", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	_, err := s.service.Update(ctx, existing.CustomerID, dto.UpdateCustomerRequest{
		NationalID: "new-id",
		FullName:   "New Name",
		KYCStatus:  domain.KYCApproved,
		RiskLevel:  domain.RiskMedium,
	}, s.userID)

	s.Require().NoError(err)
	s.Equal("new-id", updated.NationalID)
	s.Equal("New Name", updated.FullName)
	s.Equal(domain.KYCApproved, updated.KYCStatus)
	s.Equal(s.userID, updated.LastUpdatedBy)
}

func (s *CustomerServiceTestSuite) TestUpdateUnknownCustomer() {
	ctx := context.Background()
	customerID := uuid.NewString()

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Update(ctx, customerID, dto.UpdateCustomerRequest{
		NationalID: "x",
		FullName:   "x",
		KYCStatus:  domain.KYCPending,
		RiskLevel:  domain.RiskLow,
	}, s.userID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CustomerServiceTestSuite) TestGetByIDUnknown() {
	ctx := context.Background()
	customerID := uuid.NewString()

	s.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetByID(ctx, customerID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

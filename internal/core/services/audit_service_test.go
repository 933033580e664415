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
)

type AuditServiceTestSuite struct {
	suite.Suite
	mockAuditRepo *MockAuditLogRepository
	service       portssvc.AuditSvcFacade
	userID        string
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.mockAuditRepo = new(MockAuditLogRepository)
	s.service = services.NewAuditService(s.mockAuditRepo)
	s.userID = uuid.NewString()
}

func (s *AuditServiceTestSuite) TestRecordSavesAndPrunes() {
	ctx := context.Background()

	var saved domain.SystemAuditLog
	s.mockAuditRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.SystemAuditLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.SystemAuditLog)
		}).Return(nil).Once()
	s.mockAuditRepo.On("PruneToLimit", ctx, domain.AuditLogLimit).Return(nil).Once()

	err := s.service.Record(ctx, s.userID, "TXN_ENTRY", "Recorded CASH_IN entry", domain.SeverityInfo)

	s.Require().NoError(err)
	s.NotEmpty(saved.LogID)
	s.Equal(s.userID, saved.UserID)
	s.Equal("TXN_ENTRY", saved.Action)
	s.Equal("TXN", saved.Module)
	s.Equal(domain.SeverityInfo, saved.Severity)
	s.False(saved.CreatedAt.IsZero())
	s.mockAuditRepo.AssertExpectations(s.T())
}

func (s *AuditServiceTestSuite) TestRecordSurvivesPruneFailure() {
	ctx := context.Background()

	s.mockAuditRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.SystemAuditLog")).Return(nil).Once()
	s.mockAuditRepo.On("PruneToLimit", ctx, domain.AuditLogLimit).Return(apperrors.ErrInternal).Once()

	err := s.service.Record(ctx, s.userID, "CONFIG_UPDATE", "Replaced system config", domain.SeverityWarning)

	s.NoError(err)
}

func (s *AuditServiceTestSuite) TestRecordFailsWhenSaveFails() {
	ctx := context.Background()

	s.mockAuditRepo.On("SaveLog", ctx, mock.AnythingOfType("domain.SystemAuditLog")).Return(apperrors.ErrInternal).Once()

	err := s.service.Record(ctx, s.userID, "TXN_DEL", "Soft-deleted entry", domain.SeverityCritical)

	s.Error(err)
	s.mockAuditRepo.AssertNotCalled(s.T(), "PruneToLimit", mock.Anything, mock.Anything)
}

func (s *AuditServiceTestSuite) TestListReturnsRetainedEntries() {
	ctx := context.Background()

	logs := []domain.SystemAuditLog{
		{LogID: uuid.NewString(), Action: "TXN_ENTRY", Module: "TXN"},
		{LogID: uuid.NewString(), Action: "CUSTOMER_REG", Module: "CUSTOMER"},
	}
	s.mockAuditRepo.On("ListLogs", ctx).Return(logs, nil).Once()

	got, err := s.service.List(ctx)

	s.Require().NoError(err)
	s.Equal(logs, got)
}

func TestAuditServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

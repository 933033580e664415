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

type ConfigServiceTestSuite struct {
	suite.Suite
	mockConfigRepo *MockConfigRepository
	mockAuditSvc   *MockAuditService
	service        portssvc.ConfigSvcFacade
	userID         string
}

func (s *ConfigServiceTestSuite) SetupTest() {
	s.mockConfigRepo = new(MockConfigRepository)
	s.mockAuditSvc = new(MockAuditService)
	s.service = services.NewConfigService(s.mockConfigRepo, s.mockAuditSvc)
	s.userID = uuid.NewString()
}

func (s *ConfigServiceTestSuite) TestGetSeedsDefaultOnFirstAccess() {
	ctx := context.Background()

	s.mockConfigRepo.On("FindConfig", ctx).Return(nil, apperrors.ErrNotFound).Once()
	s.mockConfigRepo.On("SaveConfig", ctx, mock.AnythingOfType("domain.SystemConfig")).Return(nil).Once()

	cfg, err := s.service.Get(ctx)

	s.Require().NoError(err)
	s.Equal(1, cfg.Version)
	s.Equal("USD", cfg.BaseCurrency())
	_, usdActive := cfg.ActiveCurrency("USD")
	s.True(usdActive)
	s.NotEmpty(cfg.Branches)
	s.mockConfigRepo.AssertExpectations(s.T())
}

func (s *ConfigServiceTestSuite) TestGetCachesAfterFirstRead() {
	ctx := context.Background()
	stored := domain.DefaultSystemConfig()

	s.mockConfigRepo.On("FindConfig", ctx).Return(&stored, nil).Once()

	_, err := s.service.Get(ctx)
	s.Require().NoError(err)

	// second read served from cache, repo not hit again
	_, err = s.service.Get(ctx)
	s.Require().NoError(err)
	s.mockConfigRepo.AssertNumberOfCalls(s.T(), "FindConfig", 1)
}

func updateReqFrom(cfg domain.SystemConfig) dto.UpdateConfigRequest {
	return dto.UpdateConfigRequest{
		Company:           cfg.Company,
		Currencies:        cfg.Currencies,
		ExpenseCategories: cfg.ExpenseCategories,
		Branches:          cfg.Branches,
		Language:          cfg.Language,
		Calendar:          cfg.Calendar,
		Version:           cfg.Version,
	}
}

func (s *ConfigServiceTestSuite) TestUpdateBumpsVersion() {
	ctx := context.Background()
	stored := domain.DefaultSystemConfig()

	s.mockConfigRepo.On("FindConfig", ctx).Return(&stored, nil).Once()
	s.mockConfigRepo.On("SaveConfig", ctx, mock.AnythingOfType("domain.SystemConfig")).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.userID, "CONFIG_UPDATE", mock.AnythingOfType("string"), domain.SeverityInfo).Return(nil).Once()

	req := updateReqFrom(stored)
	req.Language = "en"

	updated, err := s.service.Update(ctx, req, s.userID)

	s.Require().NoError(err)
	s.Equal(stored.Version+1, updated.Version)
	s.Equal("en", updated.Language)
}

func (s *ConfigServiceTestSuite) TestUpdateRejectsStaleVersion() {
	ctx := context.Background()
	stored := domain.DefaultSystemConfig()
	stored.Version = 5

	s.mockConfigRepo.On("FindConfig", ctx).Return(&stored, nil).Once()

	req := updateReqFrom(stored)
	req.Version = 3

	_, err := s.service.Update(ctx, req, s.userID)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockConfigRepo.AssertNotCalled(s.T(), "SaveConfig", mock.Anything, mock.Anything)
}

func TestConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}

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
	"github.com/sarafcore/sarafcore_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockAuditSvc *MockAuditService
	service      portssvc.UserSvcFacade
	creatorID    string
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.mockAuditSvc = new(MockAuditService)
	s.service = services.NewUserService(s.mockUserRepo, s.mockAuditSvc)
	s.creatorID = uuid.NewString()
}

func (s *UserServiceTestSuite) TestCreateHashesPassword() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByUsername", ctx, "teller1").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	s.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()
	s.mockAuditSvc.On("Record", ctx, s.creatorID, "USER_CREATE", mock.AnythingOfType("string"), domain.SeverityWarning).Return(nil).Once()

	user, err := s.service.Create(ctx, dto.CreateUserRequest{
		Username: "teller1",
		Password: "s3cret-password",
		Name:     "Front Desk Teller",
		Role:     domain.RoleTeller,
	}, s.creatorID)

	s.Require().NoError(err)
	s.NotEmpty(user.UserID)
	s.NotEqual("s3cret-password", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("s3cret-password", saved.PasswordHash))
}

func (s *UserServiceTestSuite) TestCreateRejectsDuplicateUsername() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByUsername", ctx, "admin").Return(&domain.User{Username: "admin"}, nil).Once()

	_, err := s.service.Create(ctx, dto.CreateUserRequest{
		Username: "admin",
		Password: "whatever123",
		Name:     "Impostor",
		Role:     domain.RoleAdmin,
	}, s.creatorID)

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestAuthenticateSuccess() {
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "compliance1",
		PasswordHash: hash,
		Role:         domain.RoleCompliance,
	}
	s.mockUserRepo.On("FindUserByUsername", ctx, "compliance1").Return(stored, nil).Once()

	user, err := s.service.Authenticate(ctx, "compliance1", "correct-horse")

	s.Require().NoError(err)
	s.Equal(stored.UserID, user.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticateWrongPassword() {
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)

	s.mockUserRepo.On("FindUserByUsername", ctx, "compliance1").Return(&domain.User{
		PasswordHash: hash,
	}, nil).Once()

	_, err = s.service.Authenticate(ctx, "compliance1", "wrong-horse")

	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *UserServiceTestSuite) TestAuthenticateUnknownUser() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Authenticate(ctx, "ghost", "whatever")

	// same error as a bad password, nothing leaks about which usernames exist
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

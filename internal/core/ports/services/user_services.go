package services

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
	"github.com/sarafcore/sarafcore_backend/internal/dto"
)

// UserSvcFacade manages back-office operator accounts and authentication.
type UserSvcFacade interface {
	Create(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)

	// Authenticate verifies a username/password pair and returns the user on
	// success. Invalid credentials yield apperrors.ErrForbidden.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

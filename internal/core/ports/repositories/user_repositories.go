package repositories

import (
	"context"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

// UserRepositoryFacade persists back-office operator accounts.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound when no record exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername returns apperrors.ErrNotFound when no record exists.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]domain.User, error)
}

package auth

import (
	"context"

	"fleetflow/internal/domain"
)

// userRepository defines storage operations required by the auth layer.
type userRepository interface {
	Create(ctx context.Context, u *domain.User) error
	EmailTaken(ctx context.Context, email string) (bool, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

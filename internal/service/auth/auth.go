package auth

import (
	"context"
	"strings"
	"time"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
)

// Service implements registration and login. Credentials are compared
// as stored - no hashing - to stay compatible with the existing data set.
type Service struct {
	users            userRepository
	operationTimeout time.Duration
}

// NewService creates and configures an auth Service.
func NewService(users userRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{users: users, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// RegisterInput carries a registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (in *RegisterInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Role = strings.TrimSpace(in.Role)
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return apperr.Invalid
	}
	return nil
}

// Register creates a user. The email is unique case-insensitively; a
// duplicate fails with Conflict. The returned user carries public fields
// only - the password is never echoed back.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	taken, err := s.users.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict
	}

	u := &domain.User{
		ID:       domain.NewID(domain.UserIDPrefix),
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Role:     in.Role,
	}
	// the unique index still backs this up if two registrations race
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	u.Password = ""
	return u, nil
}

// Login performs an exact-match lookup on lowercased email and password.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Invalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.users.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.Unauthorized
	}
	return u, nil
}

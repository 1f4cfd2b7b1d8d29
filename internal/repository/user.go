package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fleetflow/internal/apperr"
	"fleetflow/internal/domain"
)

// UserRepo represents user repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// Create - creates a new user. Email must already be lowercased by the caller.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password, role)
		 VALUES ($1, $2, $3, $4, $5)`,
		u.ID, u.Name, u.Email, u.Password, u.Role)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.Conflict
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// EmailTaken reports whether a user with the given (lowercased) email exists.
func (r *UserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var id string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE email=$1`, email).Scan(&id)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("lookup email: %w", err)
	}
	return true, nil
}

// Authenticate - exact-match lookup on email and password, mirroring the
// legacy credential check. Returns nil when no row matches.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, role FROM users WHERE email=$1 AND password=$2`,
		email, password,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return &u, nil
}

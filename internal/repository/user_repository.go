package repository

import (
	"errors"

	"github.com/nghetinhport/tos-bigdata-api/internal/domain"
)

// ErrUserNotFound is returned when no registry entry matches the username.
var ErrUserNotFound = errors.New("user not found")

// UserRepository resolves accounts by exact username. The in-memory
// implementation below is the fixed registry; the interface exists so a real
// user store can replace it without touching the verification logic.
type UserRepository interface {
	GetByUsername(username string) (*domain.User, error)
}

type staticUserRepository struct {
	users map[string]domain.User
}

// NewStaticUserRepository builds an in-memory registry from the given
// accounts, keyed by username.
func NewStaticUserRepository(users []domain.User) UserRepository {
	m := make(map[string]domain.User, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &staticUserRepository{users: m}
}

func (r *staticUserRepository) GetByUsername(username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// DefaultUsers returns the registry the service ships with: one integration
// account still on the legacy credential and one bcrypt-hashed admin account.
func DefaultUsers() []domain.User {
	return []domain.User{
		{
			Username:         "abc",
			StoredCredential: "6504E4EF9274BDE48162B6F2BE0FDF0",
			FullName:         "Admin User",
		},
		{
			Username: "admin",
			// bcrypt hash of "admin123"
			StoredCredential: "$2b$12$LQv3c1yqBWVHxkd0LHAkCOYz6TtxMQJqhN8/LewY5GyYqYGH.2vjW",
			FullName:         "System Admin",
		},
	}
}

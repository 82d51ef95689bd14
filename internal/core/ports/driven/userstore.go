package driven

import (
	"context"

	"github.com/oakway-labs/eventscout/internal/core/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// ListUsers returns all users ordered by ID.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// GetUser returns the user with the given ID.
	// Returns domain.ErrNotFound if no such user exists.
	GetUser(ctx context.Context, id int64) (domain.User, error)

	// CreateUser inserts a new user and returns it with its assigned ID.
	// Returns domain.ErrAlreadyExists if the username or email is taken.
	CreateUser(ctx context.Context, username, email string) (domain.User, error)

	// UpdateUser changes a user's username and email.
	// Returns domain.ErrNotFound if no such user exists and
	// domain.ErrAlreadyExists on a username or email conflict.
	UpdateUser(ctx context.Context, id int64, username, email string) (domain.User, error)

	// DeleteUser removes the user with the given ID.
	// Returns domain.ErrNotFound if no such user exists.
	DeleteUser(ctx context.Context, id int64) error

	// Close releases resources.
	Close() error
}

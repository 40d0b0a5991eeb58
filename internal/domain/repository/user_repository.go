// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
)

// Domain-specific errors for account persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrUserNotFound is returned when a user account is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrCredentialNotFound is returned when no credential exists for a user.
	ErrCredentialNotFound = errors.New("credential not found")
)

// UserRepository defines the standard operations for user account persistence.
type UserRepository interface {
	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// MarkEmailVerified records a successful email confirmation.
	MarkEmailVerified(ctx context.Context, id uuid.UUID) error
}

// CredentialRepository stores the non-reversible password representation,
// keyed by account identity. Credentials are immutable: a password change
// replaces the whole record instead of mutating it.
type CredentialRepository interface {
	// Create persists a freshly built credential.
	Create(ctx context.Context, cred *entity.Credential) error

	// FindByUserID retrieves the current credential for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)

	// Replace removes the user's previous credential and persists the new one.
	Replace(ctx context.Context, cred *entity.Credential) error
}

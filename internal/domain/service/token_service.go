package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and validates the access tokens handed out on login.
type TokenService interface {
	// GenerateAccessToken creates a signed token for the given user.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken checks a token string and returns the user it was
	// issued for.
	ValidateAccessToken(token string) (uuid.UUID, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}

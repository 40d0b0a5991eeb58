// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique account in the
// marketplace. Identity fields (Name, Email) also feed verification-code
// derivation, so changing either one revokes every outstanding code.
type User struct {
	ID            uuid.UUID // The unique identifier for the user account.
	Email         string    // The user's primary contact email, used as the login identifier.
	Name          string    // The user's display name.
	EmailVerified bool      // Whether the user has confirmed the address with a verification code.
	CreatedAt     time.Time // Timestamp of when this user account was created.
	UpdatedAt     time.Time // Timestamp of the last modification to this user's data.
}

// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "bazaar/internal/domain/entity"

// Hasher is a one-way digest primitive: deterministic, collision resistant
// and non-reversible. Implementations are stateless and safe for concurrent
// use. Digesting empty input is an error; there are no other failure modes.
type Hasher interface {
	// Digest returns the fixed-length hex encoding of the digest of input.
	Digest(input string) (string, error)
}

// SaltSource produces fresh, cryptographically unpredictable salt values.
// Salts must never derive from a predictable seed such as the clock.
type SaltSource interface {
	// NewSalt returns a new opaque salt, unique with overwhelming probability.
	NewSalt() (string, error)
}

// CredentialManager owns the salted-password construction protocol and the
// deterministic verification-code derivation built on top of it.
type CredentialManager interface {
	// Create builds a credential from a plaintext password: it digests the
	// password, draws a fresh salt and digests (passwordDigest ‖ salt).
	// A password failing the configured policy yields the WeakPassword error.
	Create(plaintext string) (*entity.Credential, error)

	// Verify recomputes the salted-digest chain from a candidate password and
	// the credential's stored salt, comparing in constant time.
	// A mismatch is a normal boolean outcome, never an error.
	Verify(candidate string, cred *entity.Credential) bool

	// DeriveVerificationCode combines (name ‖ salt ‖ saltedDigest ‖ email),
	// in that fixed order, through the digest primitive. The code is stateless:
	// it is rederived on demand and any change to an input revokes it.
	DeriveVerificationCode(name string, cred *entity.Credential, email string) (string, error)

	// ParseStoredSecret splits a persisted secret back into salt and
	// saltedDigest. Fails on malformed input.
	ParseStoredSecret(secret string) (salt, saltedDigest string, err error)
}

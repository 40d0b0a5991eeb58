package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is the stored, non-reversible representation of a user's
// password. Both parts are hex digests of equal length, so the persisted
// form is simply their concatenation and splits back without a separator.
//
// A Credential is immutable once created. A password change or reset builds
// a brand-new Credential with a fresh salt; salts are never reused.
type Credential struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links the credential to the User it protects.
	Salt         string    // Random per-credential value, hex-encoded, drawn once at creation.
	SaltedDigest string    // Digest of (passwordDigest ‖ salt), hex-encoded.
	CreatedAt    time.Time // Timestamp of when this credential was created.
}

// StoredSecret returns salt ‖ saltedDigest, the only representation that is
// ever persisted. The plaintext password is not recoverable from it.
func (c *Credential) StoredSecret() string {
	return c.Salt + c.SaltedDigest
}

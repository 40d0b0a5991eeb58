package crypto

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"

	"bazaar/internal/domain/service"
)

// saltRandomBytes is the entropy drawn per salt, before digesting.
const saltRandomBytes = 32

// randomSaltSource draws salts from crypto/rand and normalizes them through
// the digest primitive, so a salt always has the same hex length as a digest.
// That equality is what lets the stored secret concatenate without a separator.
type randomSaltSource struct {
	hasher service.Hasher
}

// NewSaltSource is the constructor for randomSaltSource.
func NewSaltSource(hasher service.Hasher) service.SaltSource {
	return &randomSaltSource{hasher: hasher}
}

// NewSalt returns a fresh unpredictable salt.
func (s *randomSaltSource) NewSalt() (string, error) {
	buf := make([]byte, saltRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random salt bytes")
	}

	salt, err := s.hasher.Digest(hex.EncodeToString(buf))
	if err != nil {
		return "", errors.Wrap(err, "failed to digest salt bytes")
	}

	return salt, nil
}

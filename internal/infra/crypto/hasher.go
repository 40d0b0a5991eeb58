// Package crypto provides concrete implementations of the credential-security
// domain services: the digest primitive, the salt source and the credential
// manager built on top of them.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// Supported digest algorithms. Both are 256-bit.
const (
	AlgorithmSHA256  = "sha256"
	AlgorithmSHA3256 = "sha3-256"
)

// digestHasher implements service.Hasher over a stdlib hash constructor.
type digestHasher struct {
	newHash func() hash.Hash
}

// NewHasher builds the digest primitive for the configured algorithm.
func NewHasher(algorithm string) (service.Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case "", AlgorithmSHA256:
		return &digestHasher{newHash: sha256.New}, nil
	case AlgorithmSHA3256:
		return &digestHasher{newHash: func() hash.Hash { return sha3.New256() }}, nil
	default:
		return nil, errors.Errorf("unsupported hash algorithm: %q", algorithm)
	}
}

// Digest returns the hex-encoded digest of input.
// Empty input is the only failure mode.
func (h *digestHasher) Digest(input string) (string, error) {
	if input == "" {
		return "", domainerrors.ErrInvalidInput.WrapMessage("digest input must not be empty")
	}

	hasher := h.newHash()
	hasher.Write([]byte(input))

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

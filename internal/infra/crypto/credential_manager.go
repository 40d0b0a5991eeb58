package crypto

import (
	"crypto/subtle"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// credentialManager implements the salted-password protocol:
//
//	passwordDigest = H(password)
//	salt           = SaltSource.NewSalt()
//	saltedDigest   = H(passwordDigest ‖ salt)
//	storedSecret   = salt ‖ saltedDigest
//
// and derives verification codes as H(name ‖ salt ‖ saltedDigest ‖ email).
// The input order of the code is fixed and must stay stable: changing it
// would silently revoke every code already delivered to users.
type credentialManager struct {
	hasher service.Hasher
	salts  service.SaltSource
	policy config.PasswordPolicyConfig

	// digestLen is the hex length of one digest, probed at construction.
	// Salt and saltedDigest share it, so storedSecret splits at digestLen.
	digestLen int
}

// CredentialManagerParams bundle the collaborators of the manager.
type CredentialManagerParams struct {
	Hasher service.Hasher
	Salts  service.SaltSource
	Policy *config.PasswordPolicyConfig
}

// NewCredentialManager is the constructor for credentialManager.
func NewCredentialManager(params CredentialManagerParams) (service.CredentialManager, error) {
	probe, err := params.Hasher.Digest("length-probe")
	if err != nil {
		return nil, errors.Wrap(err, "failed to probe digest length")
	}

	policy := config.PasswordPolicyConfig{MinLength: 1}
	if params.Policy != nil {
		policy = *params.Policy
	}
	if policy.MinLength < 1 {
		policy.MinLength = 1
	}

	return &credentialManager{
		hasher:    params.Hasher,
		salts:     params.Salts,
		policy:    policy,
		digestLen: len(probe),
	}, nil
}

// Create builds a new credential for a plaintext password.
// The salt is drawn fresh on every call; two credentials never share one.
func (m *credentialManager) Create(plaintext string) (*entity.Credential, error) {
	if err := m.checkPolicy(plaintext); err != nil {
		return nil, err
	}

	passwordDigest, err := m.hasher.Digest(plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to digest password")
	}

	salt, err := m.salts.NewSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw salt")
	}

	saltedDigest, err := m.hasher.Digest(passwordDigest + salt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to digest salted password")
	}

	return &entity.Credential{
		Salt:         salt,
		SaltedDigest: saltedDigest,
	}, nil
}

// Verify recomputes the salted-digest chain for a candidate password and
// compares it to the stored saltedDigest in constant time.
func (m *credentialManager) Verify(candidate string, cred *entity.Credential) bool {
	if cred == nil {
		return false
	}

	candidateDigest, err := m.hasher.Digest(candidate)
	if err != nil {
		return false
	}

	recomputed, err := m.hasher.Digest(candidateDigest + cred.Salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(recomputed), []byte(cred.SaltedDigest)) == 1
}

// DeriveVerificationCode regenerates the stateless verification code from the
// account's identity fields and credential.
func (m *credentialManager) DeriveVerificationCode(name string, cred *entity.Credential, email string) (string, error) {
	if cred == nil {
		return "", domainerrors.ErrInvalidInput.WrapMessage("credential must not be nil")
	}

	code, err := m.hasher.Digest(name + cred.Salt + cred.SaltedDigest + email)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive verification code")
	}

	return code, nil
}

// ParseStoredSecret splits salt ‖ saltedDigest back into its two halves.
func (m *credentialManager) ParseStoredSecret(secret string) (string, string, error) {
	if len(secret) != 2*m.digestLen {
		return "", "", domainerrors.ErrInvalidInput.WrapMessage("stored secret has unexpected length")
	}

	return secret[:m.digestLen], secret[m.digestLen:], nil
}

// checkPolicy enforces the configured minimum password strength.
func (m *credentialManager) checkPolicy(plaintext string) error {
	if strings.TrimSpace(plaintext) == "" {
		return domainerrors.ErrWeakPassword.WrapMessage("password must not be empty")
	}
	if len(plaintext) < m.policy.MinLength {
		return domainerrors.ErrWeakPassword.WrapMessage("password is shorter than the configured minimum")
	}
	if m.policy.MaxLength > 0 && len(plaintext) > m.policy.MaxLength {
		return domainerrors.ErrWeakPassword.WrapMessage("password is longer than the configured maximum")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if m.policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain an uppercase letter")
	}
	if m.policy.RequireLowercase && !hasLower {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain a lowercase letter")
	}
	if m.policy.RequireNumbers && !hasNumber {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain a number")
	}
	if m.policy.RequireSpecial && !hasSpecial {
		return domainerrors.ErrWeakPassword.WrapMessage("password must contain a special character")
	}

	return nil
}

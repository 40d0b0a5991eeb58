package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

func newTestManager(t *testing.T, policy *config.PasswordPolicyConfig) service.CredentialManager {
	t.Helper()

	hasher, err := NewHasher(AlgorithmSHA256)
	require.NoError(t, err)

	manager, err := NewCredentialManager(CredentialManagerParams{
		Hasher: hasher,
		Salts:  NewSaltSource(hasher),
		Policy: policy,
	})
	require.NoError(t, err)

	return manager
}

func TestCredentialManager_CreateAndVerify(t *testing.T) {
	manager := newTestManager(t, nil)

	cred, err := manager.Create("Secr3t!")
	require.NoError(t, err)

	assert.True(t, manager.Verify("Secr3t!", cred))
	assert.False(t, manager.Verify("wrong", cred))
	assert.False(t, manager.Verify("", cred))
}

func TestCredentialManager_StoredSecretStructure(t *testing.T) {
	manager := newTestManager(t, nil)

	cred, err := manager.Create("Secr3t!")
	require.NoError(t, err)

	secret := cred.StoredSecret()
	assert.Len(t, secret, 128)
	assert.Equal(t, cred.Salt, secret[:64])
	assert.Equal(t, cred.SaltedDigest, secret[64:])

	salt, saltedDigest, err := manager.ParseStoredSecret(secret)
	require.NoError(t, err)
	assert.Equal(t, cred.Salt, salt)
	assert.Equal(t, cred.SaltedDigest, saltedDigest)

	// A credential rebuilt from the persisted secret still verifies.
	restored := &entity.Credential{Salt: salt, SaltedDigest: saltedDigest}
	assert.True(t, manager.Verify("Secr3t!", restored))
}

func TestCredentialManager_ParseStoredSecretRejectsMalformed(t *testing.T) {
	manager := newTestManager(t, nil)

	_, _, err := manager.ParseStoredSecret("too-short")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestCredentialManager_SaltsNeverRepeat(t *testing.T) {
	manager := newTestManager(t, nil)

	first, err := manager.Create("SamePassword1!")
	require.NoError(t, err)
	second, err := manager.Create("SamePassword1!")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.SaltedDigest, second.SaltedDigest)

	// Both credentials still verify the same password independently.
	assert.True(t, manager.Verify("SamePassword1!", first))
	assert.True(t, manager.Verify("SamePassword1!", second))
}

func TestCredentialManager_PasswordPolicy(t *testing.T) {
	manager := newTestManager(t, &config.PasswordPolicyConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	weakPasswords := []string{
		"",             // empty
		"Ab1!",         // too short
		"lowercase1!",  // no uppercase
		"UPPERCASE1!",  // no lowercase
		"NoNumbers!!",  // no numbers
		"NoSpecials11", // no special characters
	}

	for _, password := range weakPasswords {
		_, err := manager.Create(password)
		assert.Error(t, err, "expected policy rejection for %q", password)
		assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword), "expected WeakPassword for %q", password)
	}

	cred, err := manager.Create("Str0ngPass!")
	require.NoError(t, err)
	assert.True(t, manager.Verify("Str0ngPass!", cred))
}

func TestCredentialManager_DeriveVerificationCode(t *testing.T) {
	manager := newTestManager(t, nil)

	cred, err := manager.Create("Secr3t!")
	require.NoError(t, err)

	code, err := manager.DeriveVerificationCode("Carl", cred, "carl@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 64)

	// Deterministic: same inputs always rederive the same code.
	again, err := manager.DeriveVerificationCode("Carl", cred, "carl@example.com")
	require.NoError(t, err)
	assert.Equal(t, code, again)

	// Changing any single input invalidates the code.
	otherName, err := manager.DeriveVerificationCode("Carla", cred, "carl@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, code, otherName)

	otherEmail, err := manager.DeriveVerificationCode("Carl", cred, "carla@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, code, otherEmail)

	otherCred, err := manager.Create("Secr3t!")
	require.NoError(t, err)
	rotated, err := manager.DeriveVerificationCode("Carl", otherCred, "carl@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, code, rotated)
}

func TestCredentialManager_DeriveVerificationCodeNilCredential(t *testing.T) {
	manager := newTestManager(t, nil)

	_, err := manager.DeriveVerificationCode("Carl", nil, "carl@example.com")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

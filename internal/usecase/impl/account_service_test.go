package impl

import (
	"context"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service        usecase.AccountUsecase
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	userRepo       *mockRepo.MockUserRepository
	credentialRepo *mockRepo.MockCredentialRepository
	credentials    *mockSvc.MockCredentialManager
	tokenService   *mockSvc.MockTokenService
	codeSender     *mockSvc.MockCodeSender
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	credentials := mockSvc.NewMockCredentialManager(t)
	tokenService := mockSvc.NewMockTokenService(t)
	codeSender := mockSvc.NewMockCodeSender(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Credentials:    credentials,
		TokenService:   tokenService,
		CodeSender:     codeSender,
		Logger:         slog.Default(),
	})

	return accountServiceFixtures{
		service:        service,
		txManager:      txManager,
		factory:        factory,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		credentials:    credentials,
		tokenService:   tokenService,
		codeSender:     codeSender,
	}
}

// passthroughTransaction makes the transaction manager invoke the callback
// with the fixture's repository factory, as the real implementation would.
func (f accountServiceFixtures) passthroughTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func testCredential(userID uuid.UUID) *entity.Credential {
	return &entity.Credential{
		ID:           uuid.New(),
		UserID:       userID,
		Salt:         "aa11",
		SaltedDigest: "bb22",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "carlos",
		Email:    "carlos@example.com",
		Password: "Secr3t!pass",
	}
	cred := &entity.Credential{Salt: "aa11", SaltedDigest: "bb22"}

	f.credentials.EXPECT().
		Create(input.Password).
		Return(cred, nil)

	f.passthroughTransaction(ctx)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)

	f.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)

	userID := uuid.New()
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})

	f.credentialRepo.EXPECT().
		Create(ctx, cred).
		Return(nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(input.Name, cred, input.Email).
		Return("deadbeef", nil)

	f.codeSender.EXPECT().
		SendVerificationCode(ctx, input.Email, "deadbeef").
		Return(nil)

	output, err := f.service.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, userID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, userID, cred.UserID)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "carlos",
		Email:    "carlos@example.com",
		Password: "Secr3t!pass",
	}

	f.credentials.EXPECT().
		Create(input.Password).
		Return(&entity.Credential{Salt: "aa11", SaltedDigest: "bb22"}, nil)

	f.passthroughTransaction(ctx)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)

	f.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := f.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "carlos",
		Email:    "carlos@example.com",
		Password: "short",
	}

	f.credentials.EXPECT().
		Create(input.Password).
		Return(nil, domainerrors.ErrWeakPassword.WrapMessage("too short"))

	output, err := f.service.Register(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrWeakPassword))
}

func TestAccountService_Login_Success(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com", Name: "carlos"}
	cred := testCredential(userID)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(cred, nil)

	f.credentials.EXPECT().
		Verify("Secr3t!pass", cred).
		Return(true)

	f.tokenService.EXPECT().
		GenerateAccessToken(userID).
		Return("signed-token", nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Secr3t!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com"}
	cred := testCredential(userID)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(cred, nil)

	f.credentials.EXPECT().
		Verify("wrong", cred).
		Return(false)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()

	f.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_VerifyEmail_Match(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com", Name: "carlos"}
	cred := testCredential(userID)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(cred, nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(user.Name, cred, user.Email).
		Return("deadbeef", nil)

	f.userRepo.EXPECT().
		MarkEmailVerified(ctx, userID).
		Return(nil)

	err := f.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: user.Email,
		Code:  "deadbeef",
	})
	require.NoError(t, err)
}

func TestAccountService_VerifyEmail_Mismatch(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com", Name: "carlos"}
	cred := testCredential(userID)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(cred, nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(user.Name, cred, user.Email).
		Return("deadbeef", nil)

	err := f.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{
		Email: user.Email,
		Code:  "not-the-code",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationCodeMismatch))
}

func TestAccountService_ResetPassword_Success(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com", Name: "carlos"}
	oldCred := testCredential(userID)
	newCred := &entity.Credential{Salt: "cc33", SaltedDigest: "dd44"}

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(oldCred, nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(user.Name, oldCred, user.Email).
		Return("deadbeef", nil)

	f.credentials.EXPECT().
		Create("N3w!password").
		Return(newCred, nil)

	f.passthroughTransaction(ctx)
	f.factory.EXPECT().CredentialRepo().Return(f.credentialRepo)

	f.credentialRepo.EXPECT().
		Replace(ctx, newCred).
		Return(nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(user.Name, newCred, user.Email).
		Return("cafef00d", nil)

	f.codeSender.EXPECT().
		SendVerificationCode(ctx, user.Email, "cafef00d").
		Return(nil)

	err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       user.Email,
		Code:        "deadbeef",
		NewPassword: "N3w!password",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, newCred.UserID)
}

func TestAccountService_ResetPassword_WrongCode(t *testing.T) {
	f := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "carlos@example.com", Name: "carlos"}
	cred := testCredential(userID)

	f.userRepo.EXPECT().
		FindByEmail(ctx, user.Email).
		Return(user, nil)

	f.credentialRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(cred, nil)

	f.credentials.EXPECT().
		DeriveVerificationCode(user.Name, cred, user.Email).
		Return("deadbeef", nil)

	err := f.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       user.Email,
		Code:        "stale-code",
		NewPassword: "N3w!password",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationCodeMismatch))
}

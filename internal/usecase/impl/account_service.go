// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/subtle"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	credentialRepo repository.CredentialRepository
	credentials    service.CredentialManager
	tokenService   service.TokenService
	codeSender     service.CodeSender
	logger         *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	CredentialRepo repository.CredentialRepository
	Credentials    service.CredentialManager
	TokenService   service.TokenService
	CodeSender     service.CodeSender
	Logger         *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		credentialRepo: params.CredentialRepo,
		credentials:    params.Credentials,
		tokenService:   params.TokenService,
		codeSender:     params.CodeSender,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Build the credential before touching storage. A weak password fails
	// here and never opens a transaction.
	cred, err := srv.credentials.Create(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Credential creation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create credential during registration")
	}

	newUser := &entity.User{
		Name:  input.Name,
		Email: input.Email,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credRepo := repoFactory.CredentialRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		cred.UserID = newUser.ID
		if createErr := credRepo.Create(ctx, cred); createErr != nil {
			return errors.Wrap(createErr, "failed to create credential during registration")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.sendVerificationCode(ctx, newUser, cred)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// sendVerificationCode derives the current code and hands it to the delivery
// collaborator. Delivery is best effort: the code is rederivable, so a failed
// send never rolls back the account.
func (srv *accountService) sendVerificationCode(ctx context.Context, user *entity.User, cred *entity.Credential) {
	code, err := srv.credentials.DeriveVerificationCode(user.Name, cred, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to derive verification code", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	if err := srv.codeSender.SendVerificationCode(ctx, user.Email, code); err != nil {
		srv.log(ctx).Warn("Failed to send verification code", slog.String("email", user.Email), slog.Any("error", err))
	}
}

// Login orchestrates the login process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, cred, err := srv.loadAccount(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if !srv.credentials.Verify(input.Password, cred) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate access token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// loadAccount fetches the user and its current credential by login email.
// A missing user and a missing credential collapse into the same
// invalid-credentials outcome so the response does not leak which one it was.
func (srv *accountService) loadAccount(ctx context.Context, email string) (*entity.User, *entity.Credential, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials.WrapMessage("account lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	cred, err := srv.credentialRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials.WrapMessage("credential lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return user, cred, nil
}

// VerifyEmail checks the submitted code against the rederived one and marks
// the address confirmed on match.
func (srv *accountService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	srv.log(ctx).Info("Verifying email", slog.String("email", input.Email))

	user, cred, err := srv.loadVerificationTarget(ctx, input.Email)
	if err != nil {
		return err
	}

	expected, err := srv.credentials.DeriveVerificationCode(user.Name, cred, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to derive verification code")
	}

	if !codesEqual(input.Code, expected) {
		srv.log(ctx).Warn("Verification code mismatch", slog.String("email", input.Email))

		return domainerrors.ErrVerificationCodeMismatch.WrapMessage("email verification failed")
	}

	if err := srv.userRepo.MarkEmailVerified(ctx, user.ID); err != nil {
		srv.log(ctx).Error("Failed to mark email verified", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to mark email verified")
	}

	srv.log(ctx).Debug("Email verified", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword replaces the credential with a freshly salted one, authorized
// by the current verification code. Every previously issued code stops
// matching because the salt and salted digest both change.
func (srv *accountService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Resetting password", slog.String("email", input.Email))

	user, cred, err := srv.loadVerificationTarget(ctx, input.Email)
	if err != nil {
		return err
	}

	expected, err := srv.credentials.DeriveVerificationCode(user.Name, cred, user.Email)
	if err != nil {
		return errors.Wrap(err, "failed to derive verification code")
	}

	if !codesEqual(input.Code, expected) {
		srv.log(ctx).Warn("Verification code mismatch during password reset", slog.String("email", input.Email))

		return domainerrors.ErrVerificationCodeMismatch.WrapMessage("password reset failed")
	}

	newCred, err := srv.credentials.Create(input.NewPassword)
	if err != nil {
		srv.log(ctx).Warn("Credential creation failed during password reset", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to create credential during password reset")
	}
	newCred.UserID = user.ID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if replaceErr := repoFactory.CredentialRepo().Replace(ctx, newCred); replaceErr != nil {
			return errors.Wrap(replaceErr, "failed to replace credential")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.sendVerificationCode(ctx, user, newCred)

	srv.log(ctx).Debug("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// loadVerificationTarget resolves the user and credential behind a
// code-authorized request. Unlike login, a missing account surfaces as
// not-found because these endpoints already require knowing the code.
func (srv *accountService) loadVerificationTarget(ctx context.Context, email string) (*entity.User, *entity.Credential, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, domainerrors.ErrUserNotFound.WrapMessage("account not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	cred, err := srv.credentialRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return nil, nil, domainerrors.ErrUserNotFound.WrapMessage("credential not found")
		}

		return nil, nil, errors.Wrap(err, "failed to find credential by user id")
	}

	return user, cred, nil
}

// codesEqual compares verification codes in constant time.
func codesEqual(submitted, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) == 1
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyEmailInput carries the verification code the user received.
type VerifyEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// ResetPasswordInput defines the data required to reset a password.
// The request is authorized by the current verification code.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates the user and its credential in one transaction and
	// hands the derived verification code to the delivery collaborator.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the password against the stored credential and issues
	// an access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyEmail checks the submitted code against the rederived one and
	// marks the address confirmed on match.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	// ResetPassword replaces the credential with a freshly salted one.
	// All previously issued verification codes stop matching by construction.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}

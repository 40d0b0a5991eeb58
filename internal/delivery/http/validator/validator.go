// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance so Echo handlers can call c.Validate.
type echoValidator struct {
	validate *playground.Validate
}

// New creates a request validator with struct-tag rules enabled.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound request payload against its validate tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// Package mail contains the verification-code delivery collaborator.
// Real mail transport is an external concern; the default implementation
// only logs the hand-off so local environments work without an SMTP setup.
package mail

import (
	"context"
	"log/slog"

	"bazaar/internal/domain/service"
)

type slogSender struct {
	logger *slog.Logger
}

// NewSlogSender is the constructor for slogSender.
func NewSlogSender(logger *slog.Logger) service.CodeSender {
	return &slogSender{logger: logger}
}

// SendVerificationCode logs the delivery instead of sending real mail.
// The code itself is not logged; codes are secrets.
func (s *slogSender) SendVerificationCode(ctx context.Context, email, code string) error {
	s.logger.InfoContext(ctx, "Verification code ready for delivery",
		slog.String("email", email),
		slog.Int("codeLength", len(code)),
	)

	return nil
}

package service

import "context"

// CodeSender delivers a verification code to a destination address.
// The transport (email, SMS, push) is a collaborator concern; this core only
// hands over the code and the destination.
type CodeSender interface {
	// SendVerificationCode delivers the code to the given address.
	SendVerificationCode(ctx context.Context, email, code string) error
}

package port

import "context"

// CodeSender delivers a one-time verification code to a user. Implementations
// decide the channel; the OTP service only cares that delivery was accepted.
type CodeSender interface {
	SendCode(ctx context.Context, phone, email, name, code string) error
}

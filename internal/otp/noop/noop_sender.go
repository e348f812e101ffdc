package noop

import (
	"context"
	"log"

	"awaaz/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op CodeSender that logs codes to stdout. For
// local development only.
func NewNoopSender() port.CodeSender {
	return &noopSender{}
}

func (s *noopSender) SendCode(_ context.Context, phone, email, name, code string) error {
	log.Printf("[NOOP OTP] Code for %s (%s, phone %s): %s", name, email, phone, code)
	return nil
}

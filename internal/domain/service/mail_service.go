package service

import "context"

// MailService defines the interface for outbound transactional mail.
type MailService interface {
	// IsEnabled reports whether a mail server is configured.
	IsEnabled() bool

	// SendPasswordReset delivers a password reset link to the recipient.
	SendPasswordReset(ctx context.Context, to string, resetURL string) error
}

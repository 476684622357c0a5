// Package mail provides the SMTP implementation of the MailService interface.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/mail"
	"net/url"

	"ledger/config"
	"ledger/internal/domain/service"

	"github.com/dajohi/goemail"
	"github.com/pkg/errors"
)

// smtpMailer sends transactional mail over SMTPS from a preset sender address.
// When the SMTP credentials are not configured the mailer runs disabled and
// silently drops messages, which keeps development environments mail-free.
type smtpMailer struct {
	smtp        *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
	logger      *slog.Logger
}

// NewSMTPMailer creates a MailService backed by an SMTPS server.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.MailService, error) {
	mc := cfg.Mail

	// Mail is considered disabled if any of the required credentials are missing.
	if mc == nil || mc.Host == "" || mc.User == "" || mc.Password == "" {
		logger.Info("Mail disabled, password reset links will only be logged")

		return &smtpMailer{disabled: true, logger: logger}, nil
	}

	h := fmt.Sprintf("smtps://%s:%s@%s", mc.User, mc.Password, mc.Host)
	u, err := url.Parse(h)
	if err != nil {
		return nil, errors.Wrap(err, "parse mail host")
	}

	a, err := mail.ParseAddress(mc.Address)
	if err != nil {
		return nil, errors.Wrap(err, "parse mail address")
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: mc.SkipVerify, //nolint:gosec
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, errors.Wrap(err, "setup smtp client")
	}

	logger.Info("Mail enabled",
		slog.String("host", mc.Host),
		slog.String("address", a.Address),
	)

	return &smtpMailer{
		smtp:        smtp,
		mailName:    a.Name,
		mailAddress: a.Address,
		logger:      logger,
	}, nil
}

// IsEnabled reports whether a mail server is configured.
func (m *smtpMailer) IsEnabled() bool {
	return !m.disabled
}

// SendPasswordReset delivers a password reset link to the recipient.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to string, resetURL string) error {
	if m.disabled {
		m.logger.Info("Mail disabled, skipping password reset mail",
			slog.String("reset_url", resetURL),
		)

		return nil
	}

	body := fmt.Sprintf(passwordResetBody, resetURL)
	msg := goemail.NewMessage(m.mailAddress, passwordResetSubject, body)
	msg.SetName(m.mailName)
	msg.AddTo(to)

	if err := m.smtp.Send(msg); err != nil {
		return errors.Wrap(err, "send password reset mail")
	}

	return nil
}

const passwordResetSubject = "Reset your password"

const passwordResetBody = `You requested a password reset for your account.

Open the link below to choose a new password. The link expires in 10 minutes and can only be used once.

%s

If you did not request this, you can safely ignore this email.
`

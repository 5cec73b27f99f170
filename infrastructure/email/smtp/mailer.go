// ABOUTME: SMTP mailer implementation for outbound email
// ABOUTME: Delivers plain-text messages through a configured SMTP relay

package smtp

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"inkwell-api/pkg/config"
)

// SMTPMailer implements the Mailer interface using net/smtp
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer creates a new SMTP mailer instance
func NewSMTPMailer(cfg config.EmailConfig) (*SMTPMailer, error) {
	if cfg.SMTPHost == "" {
		return nil, errors.New("smtp host cannot be empty")
	}
	if cfg.From == "" {
		return nil, errors.New("from address cannot be empty")
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}

	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.From,
		auth: auth,
	}, nil
}

// Send delivers one email through the relay
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

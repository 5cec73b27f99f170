// ABOUTME: Logging mailer for development environments without an SMTP relay
// ABOUTME: Writes would-be emails to the application log instead of sending

package logmail

import (
	"context"

	"inkwell-api/core/interfaces"
)

// LogMailer implements the Mailer interface by logging messages
type LogMailer struct {
	logger interfaces.Logger
}

// NewLogMailer creates a new logging mailer instance
func NewLogMailer(logger interfaces.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send logs the email instead of delivering it
func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("Email (not sent, log mailer)", map[string]interface{}{
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}

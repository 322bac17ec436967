// Package mailer delivers account emails.
package mailer

import (
	"context"
	"log/slog"
)

// LogMailer writes outgoing mail to the log instead of sending it.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	if log == nil {
		log = slog.Default()
	}
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, link string) error {
	m.log.InfoContext(ctx, "password reset email",
		slog.String("to", email),
		slog.String("subject", "Reset Your Password"),
		slog.String("link", link),
	)
	return nil
}

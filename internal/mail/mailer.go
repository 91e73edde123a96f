// Package mail provides the password-reset mail delivery used by auth.
package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogMailer writes the mail to the log instead of sending it. Used in
// development and as the default until an SMTP sender is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email string) error {
	m.log.Info("password reset email requested", zap.String("email", email))
	return nil
}

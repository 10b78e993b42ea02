// Package email delivers workflow notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"lerms/internal/shared/config"
	"lerms/internal/shared/logger"
)

// SMTPNotifier sends suppression lifecycle notifications to the configured
// reviewer list. When email is disabled it degrades to a logged no-op so the
// suppression workflow never depends on an SMTP server being reachable.
type SMTPNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(cfg *config.EmailConfig, logger logger.Interface) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: logger,
	}
}

// SendSuppressionCreated notifies reviewers that a record was suppressed
func (n *SMTPNotifier) SendSuppressionCreated(recordKind string, recordID *uint, reason, createdBy string) error {
	target := "unbound"
	if recordID != nil {
		target = fmt.Sprintf("%s #%d", recordKind, *recordID)
	} else if recordKind != "" {
		target = recordKind
	}

	subject := "Record Suppression Created"
	body := fmt.Sprintf(`A suppression has been created.

Target: %s
Reason: %s
Created by: %s

The record is hidden from default listings until the suppression is revoked or expires.
`, target, reason, createdBy)

	return n.send(subject, body)
}

// SendSuppressionRevoked notifies reviewers that a suppression was lifted
func (n *SMTPNotifier) SendSuppressionRevoked(suppressionID uint, recordKind, revokedBy string) error {
	subject := "Record Suppression Revoked"
	body := fmt.Sprintf(`A suppression has been revoked.

Suppression ID: %d
Record kind: %s
Revoked by: %s

The record is visible in default listings again.
`, suppressionID, recordKind, revokedBy)

	return n.send(subject, body)
}

func (n *SMTPNotifier) send(subject, body string) error {
	if !n.cfg.Enabled {
		n.logger.Debugw("email disabled, skipping notification", "subject", subject)
		return nil
	}
	if len(n.cfg.ReviewerList) == 0 {
		n.logger.Warnw("no reviewers configured, skipping notification", "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.FromAddress, n.cfg.FromName)
	m.SetHeader("To", n.cfg.ReviewerList...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	n.logger.Infow("notification email sent", "subject", subject, "recipients", len(n.cfg.ReviewerList))
	return nil
}

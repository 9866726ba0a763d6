// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package notify sends a best-effort email when a contact message arrives.
package notify

import (
	"fmt"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/wneessen/go-mail"
)

// Service forwards contact form submissions via SMTP. Without a configured
// host it stays disabled and every send is a no-op for the caller.
type Service struct {
	cfg *config.SMTPConfig
}

// NewService creates a notification service from the SMTP configuration.
func NewService(cfg *config.SMTPConfig) *Service {
	return &Service{cfg: cfg}
}

// Enabled reports whether notifications are configured.
func (s *Service) Enabled() bool {
	return s.cfg.Host != "" && s.cfg.From != "" && s.cfg.To != ""
}

// ContactReceived mails the submitted message to the configured recipient.
func (s *Service) ContactReceived(name, email, message string) error {
	if !s.Enabled() {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("setting from address: %w", err)
	}
	if err := msg.To(s.cfg.To); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("New contact message from %s", name))
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("From: %s <%s>\n\n%s\n", name, email, message))

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Implicit TLS for port 465, STARTTLS otherwise
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	return client.DialAndSend(msg)
}

package notification

import (
	"fmt"

	"github.com/rightguydaniel/deluxconex-BE/config"

	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer sends email through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a Mailer from the configured SMTP credentials.
func NewSMTPMailer() *SMTPMailer {
	cfg := config.AppConfig
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers a single message. At least one of textBody and htmlBody
// must be non-empty.
func (m *SMTPMailer) Send(to, subject, textBody, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("SMTPMailer: recipient is required")
	}
	if textBody == "" && htmlBody == "" {
		return fmt.Errorf("SMTPMailer: message body is required")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if textBody != "" {
		msg.SetBody("text/plain", textBody)
		if htmlBody != "" {
			msg.AddAlternative("text/html", htmlBody)
		}
	} else {
		msg.SetBody("text/html", htmlBody)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("SMTPMailer: failed to send to %s: %w", to, err)
	}
	return nil
}

// Package smtp sends mail through an SMTP relay using gomail.
package smtp

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"gopkg.in/gomail.v2"
)

// retryDelay is the pause before the single retry of a failed send.
const retryDelay = 500 * time.Millisecond

// Mailer delivers messages over SMTP. Each send dials a fresh connection; a
// failed send is retried once.
type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewMailer configures the SMTP transport.
func NewMailer(host string, port int, username, password, sender string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
	}
}

// Ensure implementation matches interface
var _ portssvc.MailSender = (*Mailer)(nil)

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	err := m.dialer.DialAndSend(msg)
	if err == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(retryDelay):
	}
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}

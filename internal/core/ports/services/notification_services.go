package services

import (
	"context"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
)

// MailSender is the outbound mail transport. Implementations own connection
// handling and retries; callers only see the final outcome of a send.
type MailSender interface {
	// Send delivers one message to one recipient.
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationSvcFacade defines the notification gateway operations
type NotificationSvcFacade interface {
	// SendEmail sends a single message through the transport.
	SendEmail(ctx context.Context, to, subject, body string) error

	// SendBulkEmails sends the same message to every recipient and returns
	// (sent, failed); a failed recipient never stops the rest.
	SendBulkEmails(ctx context.Context, recipients []string, subject, body string) (int, int)

	// SendOverdueReminders emails each overdue borrower a reminder for their
	// specific loan and returns (sent, failed).
	SendOverdueReminders(ctx context.Context, overdue []domain.OverdueLoan) (int, int)
}

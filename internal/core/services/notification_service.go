package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chinmay655/Managment-for-library/internal/core/domain"
	portssvc "github.com/chinmay655/Managment-for-library/internal/core/ports/services"
	"github.com/chinmay655/Managment-for-library/internal/middleware"
)

const overdueReminderSubject = "Overdue Book Reminder"

// notificationService formats domain events into emails and pushes them
// through the mail transport. Transport failures are counted, logged, and
// otherwise swallowed so a bad mailbox never breaks a bulk run.
type notificationService struct {
	sender      portssvc.MailSender
	libraryName string
}

// NewNotificationService wires the gateway over a mail transport.
func NewNotificationService(sender portssvc.MailSender, libraryName string) *notificationService {
	return &notificationService{sender: sender, libraryName: libraryName}
}

func (s *notificationService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := s.sender.Send(ctx, to, subject, body); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (s *notificationService) SendBulkEmails(ctx context.Context, recipients []string, subject, body string) (int, int) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var sent, failed int
	for _, to := range recipients {
		if err := s.sender.Send(ctx, to, subject, body); err != nil {
			logger.Warn("Failed to send bulk email", slog.String("error", err.Error()), slog.String("to", to))
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

func (s *notificationService) SendOverdueReminders(ctx context.Context, overdue []domain.OverdueLoan) (int, int) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var sent, failed int
	for _, loan := range overdue {
		if loan.Member.Email == "" {
			logger.Warn("Skipping overdue reminder, member has no email",
				slog.String("member_id", loan.Member.MemberID))
			failed++
			continue
		}
		body := s.overdueReminderBody(loan)
		if err := s.sender.Send(ctx, loan.Member.Email, overdueReminderSubject, body); err != nil {
			logger.Warn("Failed to send overdue reminder",
				slog.String("error", err.Error()), slog.String("member_id", loan.Member.MemberID))
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}

func (s *notificationService) overdueReminderBody(loan domain.OverdueLoan) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a reminder that the following book is overdue:\n\n"+
			"Title: %s\n"+
			"Author: %s\n"+
			"Borrowed on: %s\n"+
			"Days overdue: %d\n\n"+
			"Please return it at your earliest convenience.\n\n"+
			"Thank you,\n%s",
		loan.Member.Name,
		loan.Book.Title,
		loan.Book.Author,
		loan.BorrowedAt.Format("2006-01-02"),
		loan.DaysOverdue,
		s.libraryName,
	)
}

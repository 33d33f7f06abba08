// Package services реализует отправку писем о решениях по заявкам на подписку.
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fitlifehub/fitlife-backend/internal/lib/sl"
	"github.com/fitlifehub/fitlife-backend/internal/lib/smtp"
	"github.com/fitlifehub/fitlife-backend/internal/models"
)

// SenderService отправляет уведомления пользователям по SMTP.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(transport smtp.TransportInterface, log *slog.Logger) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendSubscriptionDecision отправляет пользователю письмо о решении по заявке:
// одобрение с датой окончания или отклонение.
func (s *SenderService) SendSubscriptionDecision(email, planName, status string, expiry *time.Time) error {
	var subject, bodyText string
	switch status {
	case models.SubscriptionActive:
		subject = "Ваша подписка FitLife активирована"
		bodyText = fmt.Sprintf("Здравствуйте!\n\nВаша заявка на план «%s» одобрена.", planName)
		if expiry != nil {
			bodyText += fmt.Sprintf("\nПодписка действует до %s.", expiry.Format("02.01.2006"))
		}
	case models.SubscriptionRejected:
		subject = "Заявка на подписку FitLife отклонена"
		bodyText = fmt.Sprintf("Здравствуйте!\n\nК сожалению, ваша заявка на план «%s» была отклонена.", planName)
	default:
		subject = "Изменение статуса подписки FitLife"
		bodyText = fmt.Sprintf("Здравствуйте!\n\nСтатус вашей подписки на план «%s» изменился: %s.", planName, status)
	}

	return s.sendEmail([]string{email}, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, body string) error {
	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() {
		if err := client.Quit(); err != nil {
			s.log.Warn("failed to quit SMTP session", sl.Err(err))
		}
	}()

	from := s.transport.GetSMTPUser()
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to set recipient: %w", err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	if _, err := wc.Write([]byte(msg)); err != nil {
		if closeErr := wc.Close(); closeErr != nil {
			s.log.Warn("failed to close data writer", sl.Err(closeErr))
		}
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	s.log.Info("sent notification email", slog.String("subject", subject))
	return nil
}

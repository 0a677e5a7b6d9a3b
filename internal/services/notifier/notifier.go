// Package notifier consumes order status events and mails the buyer.
package notifier

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/guswanstore/guswanmy/internal/lib/sl"
	"github.com/guswanstore/guswanmy/internal/lib/smtp"
	"github.com/guswanstore/guswanmy/internal/models"
)

// Transport opens authenticated SMTP connections.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// Service turns status events into buyer emails.
type Service struct {
	transport Transport
	log       *slog.Logger
}

// NewService creates a notifier Service.
func NewService(transport Transport, log *slog.Logger) *Service {
	return &Service{transport: transport, log: log}
}

// SendOrderStatusUpdate handles one order.status message body.
func (s *Service) SendOrderStatusUpdate(body []byte) error {
	var event models.StatusEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.log.Error("failed to unmarshal status event", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	var subject, bodyText string
	switch event.Status {
	case models.StatusCompleted:
		subject = "Pesanan Anda telah dikonfirmasi"
		bodyText = fmt.Sprintf("Halo,\n\nPembayaran untuk pesanan %s (Rp %d) sudah kami verifikasi. Produk Anda sudah aktif.\n\nTerima kasih sudah berbelanja.",
			event.OrderID, event.Total)
	case models.StatusRejected:
		subject = "Pesanan Anda ditolak"
		bodyText = fmt.Sprintf("Halo,\n\nBukti pembayaran untuk pesanan %s tidak dapat kami verifikasi. Silakan hubungi support untuk bantuan.",
			event.OrderID)
	default:
		s.log.Warn("ignoring status event with unexpected status", slog.String("status", event.Status))
		return nil
	}

	return s.sendEmail([]string{event.Email}, subject, bodyText)
}

func (s *Service) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent", "to", to)
	return nil
}

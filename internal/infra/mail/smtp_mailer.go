// Package mail sends transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"optika/config"
	"optika/internal/domain/entity"
	"optika/internal/domain/service"
	"optika/internal/errors"

	"github.com/jordan-wright/email"
)

const sendTimeout = 10 * time.Second

type smtpMailer struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
	logger     *slog.Logger
}

// NewSMTPMailer creates a mailer backed by plain SMTP.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be configured")
	}

	adminEmail := ""
	if cfg.Admin != nil {
		adminEmail = cfg.Admin.AdminEmail
	}

	return &smtpMailer{
		host:       cfg.Mail.Host,
		port:       cfg.Mail.Port,
		username:   cfg.Mail.Username,
		password:   cfg.Mail.Password,
		from:       cfg.Mail.From,
		adminEmail: adminEmail,
		logger:     logger,
	}, nil
}

// SendOrderConfirmation mails the order summary to the customer, with a copy
// to the store operator when one is configured.
func (m *smtpMailer) SendOrderConfirmation(ctx context.Context, order *entity.Order) error {
	msg := email.NewEmail()
	msg.From = m.from
	msg.To = []string{order.Email}
	if m.adminEmail != "" {
		msg.Bcc = []string{m.adminEmail}
	}
	msg.Subject = fmt.Sprintf("Захиалга #%s баталгаажлаа", shortOrderRef(order))
	msg.Text = []byte(renderOrderText(order))

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	done := make(chan error, 1)
	go func() {
		done <- msg.Send(addr, auth)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "mail send cancelled")
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to send order confirmation")
		}
	case <-time.After(sendTimeout):
		return errors.New("mail send timed out")
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Order confirmation sent",
		slog.String("orderId", order.ID.String()),
		slog.String("to", order.Email),
	)

	return nil
}

func shortOrderRef(order *entity.Order) string {
	id := order.ID.String()
	if len(id) >= 8 {
		return id[:8]
	}

	return id
}

func renderOrderText(order *entity.Order) string {
	var b strings.Builder
	b.WriteString("Сайн байна уу,\n\n")
	b.WriteString("Таны захиалга амжилттай бүртгэгдлээ.\n\n")
	for _, item := range order.Items {
		name := item.ProductID.String()
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(&b, "  %s x%d — %s₮\n", name, item.Quantity, item.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nНийт дүн: %s₮\n", order.Total.StringFixed(2))
	if order.ShippingAddress != "" {
		fmt.Fprintf(&b, "Хүргэлтийн хаяг: %s\n", order.ShippingAddress)
	}
	b.WriteString("\nБаярлалаа!\n")

	return b.String()
}

package mailer

import (
	"context"
	"fmt"

	"hoteloncall/config"
	"hoteloncall/infras/otel"
	"hoteloncall/shared/constant"
	"hoteloncall/shared/logger"

	"github.com/wneessen/go-mail"
)

//go:generate go run go.uber.org/mock/mockgen -source=mailer.go -destination=mock/mailer.go -package=mailer_mock

// Mailer sends plain-text notification emails to guests and staff.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	client *mail.Client
	sender string
	otel   otel.Otel
}

func New(conf *config.Config, otl otel.Otel) (Mailer, error) {
	client, err := mail.NewClient(
		conf.Mail.Host,
		mail.WithPort(conf.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(conf.Mail.Username),
		mail.WithPassword(conf.Mail.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &smtpMailer{
		client: client,
		sender: conf.Mail.Sender,
		otel:   otl,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".mailer.Send")
	defer scope.End()

	msg := mail.NewMsg()

	if err := msg.From(m.sender); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := msg.To(to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

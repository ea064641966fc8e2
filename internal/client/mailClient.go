package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Mail struct {
	To      []string
	Subject string
	Body    string
}

type MailClient interface {
	Send(ctx context.Context, m *Mail) error
}

type sendgridMailClient struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendgridMailClient(apiKey, fromName, fromEmail string) MailClient {
	return &sendgridMailClient{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (c *sendgridMailClient) Send(ctx context.Context, m *Mail) error {
	if len(m.To) == 0 {
		return nil
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(c.fromName, c.fromEmail))
	message.Subject = m.Subject

	personalization := mail.NewPersonalization()
	for _, to := range m.To {
		personalization.AddTos(mail.NewEmail("", to))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", m.Body))

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid error %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}

// logMailClient writes mail to the request logger instead of sending it.
// Used when no SendGrid key is configured.
type logMailClient struct{}

func NewLogMailClient() MailClient {
	return &logMailClient{}
}

func (c *logMailClient) Send(ctx context.Context, m *Mail) error {
	zerolog.Ctx(ctx).Info().
		Str("to", strings.Join(m.To, ",")).
		Str("subject", m.Subject).
		Str("body", m.Body).
		Msg("mail not sent: no mail provider configured")
	return nil
}

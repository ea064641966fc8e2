package service

import (
	"context"
	"donation-backend/internal/client"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// NotificationService sends operator alerts and submitter confirmations.
// Callers treat it as fire-and-forget: errors are logged, never propagated.
type NotificationService interface {
	NotifyOperators(ctx context.Context, subject, body string) error
	SendConfirmation(ctx context.Context, to, subject, body string) error
}

type notificationServiceImpl struct {
	mailClient  client.MailClient
	slackClient client.SlackClient
	adminEmails []string
}

// NewNotificationService fans operator alerts out to the admin mailbox list and,
// when slackClient is non-nil, to Slack.
func NewNotificationService(mailClient client.MailClient, slackClient client.SlackClient, adminEmails []string) NotificationService {
	return &notificationServiceImpl{
		mailClient:  mailClient,
		slackClient: slackClient,
		adminEmails: adminEmails,
	}
}

func (s *notificationServiceImpl) NotifyOperators(ctx context.Context, subject, body string) error {
	var result *multierror.Error

	if len(s.adminEmails) > 0 {
		err := s.mailClient.Send(ctx, &client.Mail{
			To:      s.adminEmails,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("mail operators: %w", err))
		}
	}

	if s.slackClient != nil {
		if err := s.slackClient.PostMessage(ctx, fmt.Sprintf("*%s*\n%s", subject, body)); err != nil {
			result = multierror.Append(result, fmt.Errorf("slack operators: %w", err))
		}
	}

	return result.ErrorOrNil()
}

func (s *notificationServiceImpl) SendConfirmation(ctx context.Context, to, subject, body string) error {
	return s.mailClient.Send(ctx, &client.Mail{
		To:      []string{to},
		Subject: subject,
		Body:    body,
	})
}

func logNotifyError(ctx context.Context, err error, what string) {
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msgf("send %s", what)
	}
}

// formatAmount renders a minor-unit amount as "25.00 USD".
func formatAmount(amount int64, currency string) string {
	return fmt.Sprintf("%s %s", decimal.New(amount, -2).StringFixed(2), currency)
}

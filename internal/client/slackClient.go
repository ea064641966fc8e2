package client

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

type SlackClient interface {
	PostMessage(ctx context.Context, text string) error
}

type slackWebhookClient struct {
	webhookURL string
}

func NewSlackWebhookClient(webhookURL string) SlackClient {
	return &slackWebhookClient{webhookURL: webhookURL}
}

func (c *slackWebhookClient) PostMessage(ctx context.Context, text string) error {
	if err := slack.PostWebhookContext(ctx, c.webhookURL, &slack.WebhookMessage{Text: text}); err != nil {
		return fmt.Errorf("slack post webhook: %w", err)
	}
	return nil
}

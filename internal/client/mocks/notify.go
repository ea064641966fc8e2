package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"donation-backend/internal/client"
)

type MailClient struct {
	mock.Mock
}

func (m *MailClient) Send(ctx context.Context, mail *client.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

type SlackClient struct {
	mock.Mock
}

func (m *SlackClient) PostMessage(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

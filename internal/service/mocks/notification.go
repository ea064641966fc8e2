package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyOperators(ctx context.Context, subject, body string) error {
	args := m.Called(ctx, subject, body)
	return args.Error(0)
}

func (m *NotificationService) SendConfirmation(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

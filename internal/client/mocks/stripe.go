package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"donation-backend/internal/client"
)

type StripeClient struct {
	mock.Mock
}

func (m *StripeClient) CreateCheckoutSession(ctx context.Context, req *client.CheckoutSessionRequest) (*client.CheckoutSessionResponse, error) {
	args := m.Called(ctx, req)

	resp, _ := args.Get(0).(*client.CheckoutSessionResponse)
	return resp, args.Error(1)
}

func (m *StripeClient) GetCustomerEmail(ctx context.Context, customerID string) (string, error) {
	args := m.Called(ctx, customerID)
	return args.String(0), args.Error(1)
}

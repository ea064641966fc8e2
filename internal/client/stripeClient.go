package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v74"
	stripeclient "github.com/stripe/stripe-go/v74/client"
)

var ErrCustomerHasNoEmail = errors.New("stripe customer has no email")

type StripeClient interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error)
	GetCustomerEmail(ctx context.Context, customerID string) (string, error)
}

type CheckoutSessionRequest struct {
	Amount     int64 // minor currency unit
	Currency   string
	Email      string
	Name       string
	Recurring  bool
	SuccessURL string
	CancelURL  string
}

type CheckoutSessionResponse struct {
	SessionID string
	URL       string
}

type stripeClientImpl struct {
	api *stripeclient.API
}

func NewStripeClient(secretKey string) StripeClient {
	var api stripeclient.API
	api.Init(secretKey, nil)

	return &stripeClientImpl{api: &api}
}

func (c *stripeClientImpl) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	priceData := &stripe.CheckoutSessionLineItemPriceDataParams{
		Currency:   stripe.String(req.Currency),
		UnitAmount: stripe.Int64(req.Amount),
		ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String("Donation"),
		},
	}

	mode := stripe.CheckoutSessionModePayment
	if req.Recurring {
		mode = stripe.CheckoutSessionModeSubscription
		priceData.ProductData.Name = stripe.String("Monthly Donation")
		priceData.Recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(mode)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: priceData,
				Quantity:  stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	if req.Name != "" {
		params.AddMetadata("donor_name", req.Name)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe create checkout session: %w", err)
	}

	return &CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (c *stripeClientImpl) GetCustomerEmail(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	customer, err := c.api.Customers.Get(customerID, params)
	if err != nil {
		return "", fmt.Errorf("stripe get customer %s: %w", customerID, err)
	}

	if customer.Deleted || customer.Email == "" {
		return "", fmt.Errorf("customer %s: %w", customerID, ErrCustomerHasNoEmail)
	}

	return customer.Email, nil
}

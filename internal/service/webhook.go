package service

import (
	"donation-backend/internal/model"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/webhook"
)

// WebhookVerifier authenticates processor notifications signed with a shared secret.
// The signature header has the form "t=<unix seconds>,v1=<hex hmac-sha256>" where the
// digest covers "<t>.<body>".
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewWebhookVerifier returns a verifier for secret. A zero tolerance accepts any
// signature timestamp.
func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	return &WebhookVerifier{
		secret:    secret,
		tolerance: tolerance,
	}
}

// Verify checks the signature of body and decodes it into a classified event.
// Every failure wraps ErrAuthentication.
func (v *WebhookVerifier) Verify(body []byte, signatureHeader string) (*model.PaymentEvent, error) {
	if v.secret == "" {
		return nil, fmt.Errorf("%w: webhook secret not configured", ErrAuthentication)
	}
	if signatureHeader == "" {
		return nil, fmt.Errorf("%w: missing signature header", ErrAuthentication)
	}

	var err error
	if v.tolerance > 0 {
		err = webhook.ValidatePayloadWithTolerance(body, signatureHeader, v.secret, v.tolerance)
	} else {
		err = webhook.ValidatePayloadIgnoringTolerance(body, signatureHeader, v.secret)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return parsePaymentEvent(body)
}

func parsePaymentEvent(body []byte) (*model.PaymentEvent, error) {
	var evt stripe.Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, fmt.Errorf("%w: decode event: %v", ErrAuthentication, err)
	}
	if evt.Type == "" {
		return nil, fmt.Errorf("%w: event type missing", ErrAuthentication)
	}

	event := &model.PaymentEvent{
		ID:   evt.ID,
		Type: string(evt.Type),
		Kind: model.PaymentEventIgnored,
	}

	switch event.Type {
	case model.EventTypeCheckoutSessionCompleted:
		var session stripe.CheckoutSession
		if err := decodeEventObject(&evt, &session); err != nil {
			return nil, err
		}
		// subscription checkouts settle through their invoices; setup checkouts move no money.
		// A session without a mode is a one-time payment.
		if session.Mode != stripe.CheckoutSessionModeSubscription && session.Mode != stripe.CheckoutSessionModeSetup {
			event.Kind = model.PaymentEventCheckoutCompleted
			event.CheckoutSession = &session
		}
	case model.EventTypeInvoicePaymentSucceeded:
		var invoice stripe.Invoice
		if err := decodeEventObject(&evt, &invoice); err != nil {
			return nil, err
		}
		if invoice.Subscription != nil && invoice.Subscription.ID != "" {
			event.Kind = model.PaymentEventInvoicePaid
			event.Invoice = &invoice
		}
	case model.EventTypeCustomerSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := decodeEventObject(&evt, &subscription); err != nil {
			return nil, err
		}
		event.Kind = model.PaymentEventSubscriptionDeleted
		event.Subscription = &subscription
	}

	return event, nil
}

func decodeEventObject(evt *stripe.Event, v any) error {
	if evt.Data == nil || len(evt.Data.Raw) == 0 {
		return fmt.Errorf("%w: %s event has no data object", ErrAuthentication, evt.Type)
	}

	if err := json.Unmarshal(evt.Data.Raw, v); err != nil {
		return fmt.Errorf("%w: decode %s object: %v", ErrAuthentication, evt.Type, err)
	}

	return nil
}

package model

import "github.com/stripe/stripe-go/v74"

const (
	EventTypeCheckoutSessionCompleted    = "checkout.session.completed"
	EventTypeInvoicePaymentSucceeded     = "invoice.payment_succeeded"
	EventTypeCustomerSubscriptionDeleted = "customer.subscription.deleted"
)

// PaymentEventKind is the closed set of processor notifications the service acts on.
// Anything unrecognised is PaymentEventIgnored.
type PaymentEventKind int

const (
	PaymentEventIgnored PaymentEventKind = iota
	PaymentEventCheckoutCompleted
	PaymentEventInvoicePaid
	PaymentEventSubscriptionDeleted
)

var PaymentEventKinds = []PaymentEventKind{
	PaymentEventIgnored,
	PaymentEventCheckoutCompleted,
	PaymentEventInvoicePaid,
	PaymentEventSubscriptionDeleted,
}

func (k PaymentEventKind) String() string {
	switch k {
	case PaymentEventCheckoutCompleted:
		return "checkout_completed"
	case PaymentEventInvoicePaid:
		return "invoice_paid"
	case PaymentEventSubscriptionDeleted:
		return "subscription_deleted"
	default:
		return "ignored"
	}
}

// PaymentEvent is a verified processor notification. Exactly one payload field is
// set, matching Kind; ignored events carry none.
type PaymentEvent struct {
	ID   string
	Type string
	Kind PaymentEventKind

	CheckoutSession *stripe.CheckoutSession
	Invoice         *stripe.Invoice
	Subscription    *stripe.Subscription
}

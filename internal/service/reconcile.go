package service

import (
	"context"
	"donation-backend/internal/model"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func (s *donationServiceImpl) handleIgnored(ctx context.Context, event *model.PaymentEvent) error {
	zerolog.Ctx(ctx).Debug().Msg("webhook event ignored")
	return nil
}

// handleCheckoutCompleted settles the pending one-time donation created with the
// checkout session.
func (s *donationServiceImpl) handleCheckoutCompleted(ctx context.Context, event *model.PaymentEvent) error {
	session := event.CheckoutSession
	if session == nil || session.ID == "" {
		return fmt.Errorf("%w: checkout event without session id", ErrDataInconsistency)
	}

	identity := DonorIdentity{}
	if session.CustomerDetails != nil {
		identity = DonorIdentity{
			Email: session.CustomerDetails.Email,
			Name:  session.CustomerDetails.Name,
			Phone: session.CustomerDetails.Phone,
		}
	}

	var (
		settled *model.Donation
		donor   *model.Donor
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		donation, err := s.donationRepo.FindByReference(ctx, tx, model.ProcessorStripe, session.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: no donation for checkout session %s", ErrDataInconsistency, session.ID)
			}
			return fmt.Errorf("find donation: %w", err)
		}

		next, err := nextDonationStatus(donation.Status, triggerPaymentConfirmed)
		if err != nil {
			return fmt.Errorf("%w: donation %s: %v", ErrDataInconsistency, donation.ID, err)
		}
		if next == donation.Status {
			zerolog.Ctx(ctx).Info().
				Str("donation_id", donation.ID).
				Msg("donation already settled")
			return nil
		}

		donor, err = s.donorResolver.Resolve(ctx, tx, identity)
		if err != nil {
			return err
		}

		var donorID *uint
		if donor != nil {
			donorID = &donor.ID
		}

		err = s.donationRepo.Transition(ctx, tx, donation.ID, donation.Status, next, donorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// a concurrent delivery settled it first
			donor = nil
			return nil
		}
		if err != nil {
			return fmt.Errorf("update donation: %w", err)
		}

		donation.Status = next
		donation.DonorID = donorID
		settled = donation
		return nil
	})
	if err != nil {
		return err
	}

	if settled != nil {
		zerolog.Ctx(ctx).Info().
			Str("donation_id", settled.ID).
			Str("session_id", session.ID).
			Msg("one-time donation succeeded")
		s.notifyDonationReceived(ctx, settled, donor)
	}

	return nil
}

// handleInvoicePaid records one succeeded donation per paid subscription invoice.
func (s *donationServiceImpl) handleInvoicePaid(ctx context.Context, event *model.PaymentEvent) error {
	invoice := event.Invoice
	if invoice == nil || invoice.ID == "" {
		return fmt.Errorf("%w: invoice event without invoice id", ErrDataInconsistency)
	}
	if invoice.AmountPaid <= 0 {
		return fmt.Errorf("%w: invoice %s has non-positive amount %d", ErrDataInconsistency, invoice.ID, invoice.AmountPaid)
	}

	currency := string(invoice.Currency)
	if currency == "" {
		currency = s.stripeCfg.Currency
	}

	donation := &model.Donation{
		ID:                   uuid.NewString(),
		Amount:               invoice.AmountPaid,
		Currency:             strings.ToUpper(currency),
		Status:               model.DonationStatusSucceeded,
		Processor:            model.ProcessorStripe,
		ProcessorReferenceID: invoice.ID,
		Recurring:            true,
	}
	if invoice.Subscription != nil {
		donation.SubscriptionID = invoice.Subscription.ID
	}

	var donor *model.Donor

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		donor, err = s.donorResolver.Resolve(ctx, tx, DonorIdentity{
			Email: invoice.CustomerEmail,
			Name:  invoice.CustomerName,
			Phone: invoice.CustomerPhone,
		})
		if err != nil {
			return err
		}
		if donor != nil {
			donation.DonorID = &donor.ID
		}

		created, err := s.donationRepo.CreateIfAbsent(ctx, tx, donation)
		if err != nil {
			return fmt.Errorf("create donation: %w", err)
		}
		if !created {
			return fmt.Errorf("%w: donation for invoice %s already recorded", ErrDataInconsistency, invoice.ID)
		}

		sub := &model.RecurringSubscription{
			SubscriptionID: donation.SubscriptionID,
			Amount:         donation.Amount,
			Currency:       donation.Currency,
			DonorID:        donation.DonorID,
		}
		if invoice.Customer != nil {
			sub.CustomerID = invoice.Customer.ID
		}
		if err := s.subscriptionRepo.Activate(ctx, tx, sub); err != nil {
			return fmt.Errorf("activate subscription: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().
		Str("donation_id", donation.ID).
		Str("invoice_id", invoice.ID).
		Str("subscription_id", donation.SubscriptionID).
		Msg("recurring donation succeeded")
	s.notifyDonationReceived(ctx, donation, donor)

	return nil
}

// handleSubscriptionDeleted records the cancellation and alerts operators.
func (s *donationServiceImpl) handleSubscriptionDeleted(ctx context.Context, event *model.PaymentEvent) error {
	subscription := event.Subscription
	if subscription == nil || subscription.ID == "" || subscription.Customer == nil || subscription.Customer.ID == "" {
		return fmt.Errorf("%w: subscription event without customer", ErrDataInconsistency)
	}

	err := s.subscriptionRepo.Cancel(ctx, s.db, subscription.ID, subscription.Customer.ID, time.Now())
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}

	email, err := s.stripeClient.GetCustomerEmail(ctx, subscription.Customer.ID)
	if err != nil {
		return fmt.Errorf("%w: customer %s: %v", ErrUpstreamLookup, subscription.Customer.ID, err)
	}

	who := email
	donor, err := s.donorRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if name := strings.TrimSpace(donor.FirstName + " " + donor.LastName); name != "" {
			who = fmt.Sprintf("%s <%s>", name, email)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		zerolog.Ctx(ctx).Warn().Err(err).Msg("lookup donor for cancelled subscription")
	}

	zerolog.Ctx(ctx).Info().
		Str("subscription_id", subscription.ID).
		Str("customer_id", subscription.Customer.ID).
		Msg("recurring donation cancelled")

	logNotifyError(ctx, s.notificationService.NotifyOperators(ctx,
		"Recurring donation cancelled",
		fmt.Sprintf("%s cancelled their recurring donation (subscription %s).", who, subscription.ID),
	), "cancellation alert")

	return nil
}

func (s *donationServiceImpl) notifyDonationReceived(ctx context.Context, donation *model.Donation, donor *model.Donor) {
	from := "An anonymous donor"
	if donor != nil {
		from = donor.Email
	}

	kind := "one-time"
	if donation.Recurring {
		kind = "recurring"
	}

	logNotifyError(ctx, s.notificationService.NotifyOperators(ctx,
		"New donation received",
		fmt.Sprintf("%s gave a %s donation of %s (reference %s).",
			from, kind, formatAmount(donation.Amount, donation.Currency), donation.ProcessorReferenceID),
	), "donation alert")
}

package service

import (
	"context"
	"donation-backend/internal/client"
	"donation-backend/internal/config"
	"donation-backend/internal/dto"
	"donation-backend/internal/model"
	"donation-backend/internal/repository"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type DonationService interface {
	CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	// HandleWebhook verifies and reconciles one processor notification. Only
	// ErrAuthentication and store failures are returned.
	HandleWebhook(ctx context.Context, body []byte, signature string) error
}

type paymentEventHandler func(ctx context.Context, event *model.PaymentEvent) error

type donationServiceImpl struct {
	db                  *gorm.DB
	stripeClient        client.StripeClient
	verifier            *WebhookVerifier
	stripeCfg           config.Stripe
	baseURL             string
	donationRepo        repository.DonationRepository
	donorRepo           repository.DonorRepository
	eventRepo           repository.EventRepository
	webhookEventRepo    repository.WebhookEventRepository
	subscriptionRepo    repository.SubscriptionRepository
	donorResolver       DonorResolver
	notificationService NotificationService

	handlers map[model.PaymentEventKind]paymentEventHandler
}

func NewDonationService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	verifier *WebhookVerifier,
	stripeCfg config.Stripe,
	baseURL string,
	donationRepo repository.DonationRepository,
	donorRepo repository.DonorRepository,
	eventRepo repository.EventRepository,
	webhookEventRepo repository.WebhookEventRepository,
	subscriptionRepo repository.SubscriptionRepository,
	donorResolver DonorResolver,
	notificationService NotificationService,
) DonationService {
	s := &donationServiceImpl{
		db:                  db,
		stripeClient:        stripeClient,
		verifier:            verifier,
		stripeCfg:           stripeCfg,
		baseURL:             strings.TrimRight(baseURL, "/"),
		donationRepo:        donationRepo,
		donorRepo:           donorRepo,
		eventRepo:           eventRepo,
		webhookEventRepo:    webhookEventRepo,
		subscriptionRepo:    subscriptionRepo,
		donorResolver:       donorResolver,
		notificationService: notificationService,
	}

	s.handlers = map[model.PaymentEventKind]paymentEventHandler{
		model.PaymentEventIgnored:             s.handleIgnored,
		model.PaymentEventCheckoutCompleted:   s.handleCheckoutCompleted,
		model.PaymentEventInvoicePaid:         s.handleInvoicePaid,
		model.PaymentEventSubscriptionDeleted: s.handleSubscriptionDeleted,
	}

	return s
}

func (s *donationServiceImpl) CreateCheckout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("donation amount must be positive")
	}

	if req.EventID != nil {
		exists, err := s.eventRepo.Exists(ctx, *req.EventID)
		if err != nil {
			return nil, fmt.Errorf("check event: %w", err)
		}
		if !exists {
			return nil, ErrEventNotFound
		}
	}

	session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CheckoutSessionRequest{
		Amount:     req.Amount,
		Currency:   s.stripeCfg.Currency,
		Email:      req.Email,
		Name:       req.Name,
		Recurring:  req.Recurring,
		SuccessURL: s.baseURL + s.stripeCfg.SuccessPath + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.baseURL + s.stripeCfg.CancelPath,
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	// recurring donations are recorded when their first invoice is paid
	if !req.Recurring {
		err = s.donationRepo.Create(ctx, s.db, &model.Donation{
			ID:                   uuid.NewString(),
			Amount:               req.Amount,
			Currency:             strings.ToUpper(s.stripeCfg.Currency),
			Status:               model.DonationStatusPending,
			Processor:            model.ProcessorStripe,
			ProcessorReferenceID: session.SessionID,
			EventID:              req.EventID,
		})
		if err != nil {
			return nil, fmt.Errorf("store pending donation: %w", err)
		}
	}

	zerolog.Ctx(ctx).Info().
		Str("session_id", session.SessionID).
		Bool("recurring", req.Recurring).
		Int64("amount", req.Amount).
		Msg("checkout session created")

	return &dto.CheckoutResponse{
		SessionID: session.SessionID,
		URL:       session.URL,
	}, nil
}

func (s *donationServiceImpl) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	event, err := s.verifier.Verify(body, signature)
	if err != nil {
		return err
	}

	l := zerolog.Ctx(ctx).With().
		Str("event_id", event.ID).
		Str("event_type", event.Type).
		Stringer("event_kind", event.Kind).
		Logger()
	ctx = l.WithContext(ctx)

	if event.ID != "" {
		processed, err := s.webhookEventRepo.Exists(ctx, event.ID)
		if err != nil {
			return fmt.Errorf("check webhook event: %w", err)
		}
		if processed {
			l.Info().Msg("webhook event already processed")
			return nil
		}
	}

	if err := s.dispatch(ctx, event); err != nil {
		return err
	}

	if event.ID != "" {
		if err := s.webhookEventRepo.MarkProcessed(ctx, event.ID, event.Type); err != nil {
			l.Error().Err(err).Msg("record webhook event")
		}
	}

	return nil
}

func (s *donationServiceImpl) dispatch(ctx context.Context, event *model.PaymentEvent) error {
	l := zerolog.Ctx(ctx)

	handle, ok := s.handlers[event.Kind]
	if !ok {
		handle = s.handleIgnored
	}

	err := handle(ctx, event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrDataInconsistency):
		l.Error().Err(err).Msg("webhook references inconsistent data, acknowledging")
		return nil
	case errors.Is(err, ErrUpstreamLookup):
		l.Error().Err(err).Msg("processor lookup failed, acknowledging")
		return nil
	default:
		return fmt.Errorf("handle %s: %w", event.Type, err)
	}
}

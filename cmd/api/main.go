package main

import (
	"context"
	"donation-backend/internal/client"
	"donation-backend/internal/config"
	"donation-backend/internal/logger"
	"donation-backend/internal/repository"
	"donation-backend/internal/server"
	"donation-backend/internal/service"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

// run wires the service and blocks until a signal or a server failure. Deferred
// cleanup runs before the exit code is returned.
func run() int {
	bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		bootLog.Info().Msg("no .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		bootLog.Error().Err(err).Msg("failed to parse config")
		return 1
	}

	log := logger.New(cfg.Log, cfg.Environment)
	ctx := log.WithContext(context.Background())

	if cfg.Stripe.WebhookSecret == "" {
		log.Warn().Msg("STRIPE_WEBHOOK_SECRET is empty, every webhook delivery will be rejected")
	}

	db, err := client.InitDBClient(cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
		return 1
	}
	defer func() {
		if err := client.CloseDBClient(db); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	stripeClient := client.NewStripeClient(cfg.Stripe.SecretKey)

	var mailClient client.MailClient
	if cfg.Notification.SendgridAPIKey != "" {
		mailClient = client.NewSendgridMailClient(cfg.Notification.SendgridAPIKey, cfg.Notification.FromName, cfg.Notification.FromEmail)
	} else {
		log.Info().Msg("SENDGRID_API_KEY not set, outbound mail is logged only")
		mailClient = client.NewLogMailClient()
	}

	var slackClient client.SlackClient
	if cfg.Notification.SlackWebhookURL != "" {
		slackClient = client.NewSlackWebhookClient(cfg.Notification.SlackWebhookURL)
	}

	donationRepo := repository.NewDonationRepository(db)
	donorRepo := repository.NewDonorRepository(db)
	eventRepo := repository.NewEventRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	newsletterRepo := repository.NewNewsletterRepository(db)

	notificationService := service.NewNotificationService(mailClient, slackClient, cfg.Notification.AdminEmails)

	donationService := service.NewDonationService(
		db,
		stripeClient,
		service.NewWebhookVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.WebhookTolerance),
		cfg.Stripe,
		cfg.BaseURL,
		donationRepo,
		donorRepo,
		eventRepo,
		webhookEventRepo,
		subscriptionRepo,
		service.NewDonorResolver(donorRepo),
		notificationService,
	)
	siteService := service.NewSiteService(eventRepo, partnerRepo, submissionRepo, newsletterRepo, notificationService)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(log, donationService, siteService)

	log.Info().
		Str("addr", serverAddr).
		Str("environment", cfg.Environment.Name).
		Msg("starting HTTP server")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigChan)

	if err := serve(ctx, srv, serverAddr, sigChan); err != nil {
		log.Error().Err(err).Msg("HTTP server stopped with error")
		return 1
	}

	return 0
}

package service

import (
	"context"
	"donation-backend/internal/dto"
	"donation-backend/internal/model"
	"donation-backend/internal/repository"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// SiteService backs the public website forms and the events listing.
type SiteService interface {
	ListEvents(ctx context.Context, highlightOnly bool) ([]*model.Event, error)
	ListPartners(ctx context.Context) ([]*model.Partner, error)
	SignUpVolunteer(ctx context.Context, req *dto.VolunteerSignupRequest) error
	SubmitContactMessage(ctx context.Context, req *dto.ContactRequest) error
	SubmitPartnerInquiry(ctx context.Context, req *dto.PartnerInquiryRequest) error
	// SubscribeNewsletter returns ErrDuplicateSubscriber for an existing address.
	SubscribeNewsletter(ctx context.Context, req *dto.NewsletterRequest) error
}

type siteServiceImpl struct {
	eventRepo           repository.EventRepository
	partnerRepo         repository.PartnerRepository
	submissionRepo      repository.SubmissionRepository
	newsletterRepo      repository.NewsletterRepository
	notificationService NotificationService
}

func NewSiteService(
	eventRepo repository.EventRepository,
	partnerRepo repository.PartnerRepository,
	submissionRepo repository.SubmissionRepository,
	newsletterRepo repository.NewsletterRepository,
	notificationService NotificationService,
) SiteService {
	return &siteServiceImpl{
		eventRepo:           eventRepo,
		partnerRepo:         partnerRepo,
		submissionRepo:      submissionRepo,
		newsletterRepo:      newsletterRepo,
		notificationService: notificationService,
	}
}

func (s *siteServiceImpl) ListEvents(ctx context.Context, highlightOnly bool) ([]*model.Event, error) {
	events, err := s.eventRepo.List(ctx, highlightOnly)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (s *siteServiceImpl) ListPartners(ctx context.Context) ([]*model.Partner, error) {
	partners, err := s.partnerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}

	return partners, nil
}

func (s *siteServiceImpl) SignUpVolunteer(ctx context.Context, req *dto.VolunteerSignupRequest) error {
	volunteer := &model.VolunteerProfile{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		Availability: req.Availability,
		Message:      req.Message,
	}
	if err := s.submissionRepo.CreateVolunteer(ctx, volunteer); err != nil {
		return fmt.Errorf("store volunteer: %w", err)
	}

	zerolog.Ctx(ctx).Info().Uint("volunteer_id", volunteer.ID).Msg("volunteer signed up")

	logNotifyError(ctx, s.notificationService.NotifyOperators(ctx,
		"New volunteer sign-up: "+volunteer.FullName,
		fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nAvailability: %s\n\n%s",
			volunteer.FullName, volunteer.Email, volunteer.Phone, volunteer.Availability, volunteer.Message),
	), "volunteer alert")

	logNotifyError(ctx, s.notificationService.SendConfirmation(ctx, volunteer.Email,
		"Welcome to the Nourish Laredo volunteer team",
		fmt.Sprintf("Hi %s,\n\nThank you for signing up to volunteer. Our team will reach out soon with next steps.", volunteer.FullName),
	), "volunteer welcome")

	return nil
}

func (s *siteServiceImpl) SubmitContactMessage(ctx context.Context, req *dto.ContactRequest) error {
	msg := &model.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.submissionRepo.CreateContactMessage(ctx, msg); err != nil {
		return fmt.Errorf("store contact message: %w", err)
	}

	zerolog.Ctx(ctx).Info().Uint("contact_message_id", msg.ID).Msg("contact message received")

	subject := msg.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	logNotifyError(ctx, s.notificationService.NotifyOperators(ctx,
		"Contact form: "+subject,
		fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	), "contact alert")

	return nil
}

func (s *siteServiceImpl) SubmitPartnerInquiry(ctx context.Context, req *dto.PartnerInquiryRequest) error {
	inquiry := &model.PartnerInquiry{
		OrganizationName: strings.TrimSpace(req.OrganizationName),
		ContactName:      strings.TrimSpace(req.ContactName),
		Email:            strings.TrimSpace(req.Email),
		Phone:            req.Phone,
		Website:          req.Website,
		PartnershipType:  model.PartnershipType(req.PartnershipType),
		Message:          req.Message,
	}
	if err := s.submissionRepo.CreatePartnerInquiry(ctx, inquiry); err != nil {
		return fmt.Errorf("store partner inquiry: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Uint("partner_inquiry_id", inquiry.ID).
		Str("partnership_type", string(inquiry.PartnershipType)).
		Msg("partner inquiry received")

	logNotifyError(ctx, s.notificationService.NotifyOperators(ctx,
		"New partner inquiry: "+inquiry.OrganizationName,
		fmt.Sprintf("Organization: %s\nContact: %s <%s>\nPhone: %s\nWebsite: %s\nType: %s\n\n%s",
			inquiry.OrganizationName, inquiry.ContactName, inquiry.Email, inquiry.Phone,
			inquiry.Website, inquiry.PartnershipType.Label(), inquiry.Message),
	), "partner alert")

	logNotifyError(ctx, s.notificationService.SendConfirmation(ctx, inquiry.Email,
		"We received your partnership inquiry",
		fmt.Sprintf("Hi %s,\n\nThank you for reaching out on behalf of %s. A member of our team will contact you shortly.",
			inquiry.ContactName, inquiry.OrganizationName),
	), "partner confirmation")

	return nil
}

func (s *siteServiceImpl) SubscribeNewsletter(ctx context.Context, req *dto.NewsletterRequest) error {
	created, err := s.newsletterRepo.Subscribe(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return fmt.Errorf("subscribe newsletter: %w", err)
	}
	if !created {
		return ErrDuplicateSubscriber
	}

	return nil
}

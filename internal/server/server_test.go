package server

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74/webhook"
	"gorm.io/gorm"

	"donation-backend/internal/client"
	clientMocks "donation-backend/internal/client/mocks"
	"donation-backend/internal/config"
	"donation-backend/internal/model"
	"donation-backend/internal/repository"
	"donation-backend/internal/service"
	"donation-backend/internal/service/mocks"
	"donation-backend/internal/testutil"
)

const webhookSecret = "whsec_server_test"

type testEnv struct {
	server   *Server
	db       *gorm.DB
	stripe   *clientMocks.StripeClient
	notifier *mocks.NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	stripeClient := &clientMocks.StripeClient{}
	notifier := &mocks.NotificationService{}
	notifier.On("NotifyOperators", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	notifier.On("SendConfirmation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	donorRepo := repository.NewDonorRepository(db)
	eventRepo := repository.NewEventRepository(db)

	donationService := service.NewDonationService(
		db,
		stripeClient,
		service.NewWebhookVerifier(webhookSecret, 5*time.Minute),
		config.Stripe{Currency: "usd", SuccessPath: "/donate/success", CancelPath: "/donate"},
		"http://localhost:3000",
		repository.NewDonationRepository(db),
		donorRepo,
		eventRepo,
		repository.NewWebhookEventRepository(db),
		repository.NewSubscriptionRepository(db),
		service.NewDonorResolver(donorRepo),
		notifier,
	)
	siteService := service.NewSiteService(
		eventRepo,
		repository.NewPartnerRepository(db),
		repository.NewSubmissionRepository(db),
		repository.NewNewsletterRepository(db),
		notifier,
	)

	return &testEnv{
		server:   NewServer(zerolog.Nop(), donationService, siteService),
		db:       db,
		stripe:   stripeClient,
		notifier: notifier,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)

	return rec
}

func sign(body, secret string) string {
	ts := time.Now()
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(webhook.ComputeSignature(ts, []byte(body), secret)))
}

func checkoutEvent(sessionID string) string {
	return fmt.Sprintf(`{
		"id": "evt_%s",
		"object": "event",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": %q,
			"object": "checkout.session",
			"mode": "payment",
			"customer_details": {"email": "a@x.com", "name": "Jane Doe"}
		}}
	}`, sessionID, sessionID)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWebhookOneTimeSuccess(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&model.Donation{
		ID:                   uuid.NewString(),
		Amount:               5000,
		Currency:             "USD",
		Status:               model.DonationStatusPending,
		Processor:            model.ProcessorStripe,
		ProcessorReferenceID: "cs_test_1",
	}).Error)

	body := checkoutEvent("cs_test_1")
	rec := env.do(t, http.MethodPost, "/api/donations/webhook/", body, map[string]string{
		"Stripe-Signature": sign(body, webhookSecret),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())

	var donation model.Donation
	require.NoError(t, env.db.Preload("Donor").Where("processor_reference_id = ?", "cs_test_1").First(&donation).Error)
	assert.Equal(t, model.DonationStatusSucceeded, donation.Status)
	require.NotNil(t, donation.Donor)
	assert.Equal(t, "a@x.com", donation.Donor.Email)
}

func TestWebhookOrphanAcknowledged(t *testing.T) {
	env := newTestEnv(t)

	body := checkoutEvent("cs_missing")
	rec := env.do(t, http.MethodPost, "/api/donations/webhook", body, map[string]string{
		"Stripe-Signature": sign(body, webhookSecret),
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.Donation{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	env := newTestEnv(t)
	body := checkoutEvent("cs_test_1")

	rec := env.do(t, http.MethodPost, "/api/donations/webhook", body, map[string]string{
		"Stripe-Signature": sign(body, "whsec_wrong"),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/donations/webhook", body, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&model.WebhookEvent{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	env.stripe.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(&client.CheckoutSessionResponse{SessionID: "cs_test_7", URL: "https://checkout.stripe.com/c/pay/cs_test_7"}, nil)

	rec := env.do(t, http.MethodPost, "/api/donations/checkout", `{"amount":5000,"email":"a@x.com","name":"Jane Doe"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"session_id":"cs_test_7","url":"https://checkout.stripe.com/c/pay/cs_test_7"}`, rec.Body.String())

	var donation model.Donation
	require.NoError(t, env.db.Where("processor_reference_id = ?", "cs_test_7").First(&donation).Error)
	assert.Equal(t, model.DonationStatusPending, donation.Status)
}

func TestCheckoutValidation(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{
		`{"amount":0}`,
		`{"amount":-100}`,
		`{"amount":100,"email":"not-an-email"}`,
		`{"amount":100,"event_id":999}`,
		`not json`,
	} {
		rec := env.do(t, http.MethodPost, "/api/donations/checkout", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	env.stripe.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestListEvents(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()
	require.NoError(t, env.db.Create(&model.Event{Title: "Food Drive", Date: now.AddDate(0, -1, 0)}).Error)
	require.NoError(t, env.db.Create(&model.Event{Title: "Holiday Drive", Date: now, IsHighlight: true}).Error)

	rec := env.do(t, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []model.Event
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "Holiday Drive", events[0].Title)

	rec = env.do(t, http.MethodGet, "/api/events?highlight=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.True(t, events[0].IsHighlight)

	rec = env.do(t, http.MethodGet, "/api/events?highlight=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmissions(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{
			name:   "volunteer",
			path:   "/api/volunteer-signup/",
			body:   `{"full_name":"Jane Doe","email":"jane.doe@example.com","phone":"(956) 555-9876","availability":"Weekends","message":"I am excited to help!"}`,
			status: http.StatusCreated,
		},
		{
			name:   "volunteer missing name",
			path:   "/api/volunteer-signup",
			body:   `{"email":"jane.doe@example.com"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "contact",
			path:   "/api/contact/",
			body:   `{"name":"Maria Garcia","email":"maria@example.com","subject":"Inquiry: Holiday Drive","message":"How can we help?"}`,
			status: http.StatusCreated,
		},
		{
			name:   "contact missing message",
			path:   "/api/contact",
			body:   `{"name":"Maria Garcia","email":"maria@example.com"}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "partner inquiry",
			path:   "/api/partners/inquiry/",
			body:   `{"organization_name":"Bob's Burgers Laredo","contact_name":"Bob Belcher","email":"bob@bobsburgers.com","website":"https://bobsburgers.com","partnership_type":"in_kind"}`,
			status: http.StatusCreated,
		},
		{
			name:   "partner inquiry unknown type",
			path:   "/api/partners/inquiry",
			body:   `{"organization_name":"Acme","contact_name":"Wile E.","email":"wile@acme.test","partnership_type":"barter"}`,
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	var volunteers, messages, inquiries int64
	require.NoError(t, env.db.Model(&model.VolunteerProfile{}).Count(&volunteers).Error)
	require.NoError(t, env.db.Model(&model.ContactMessage{}).Count(&messages).Error)
	require.NoError(t, env.db.Model(&model.PartnerInquiry{}).Count(&inquiries).Error)
	assert.EqualValues(t, 1, volunteers)
	assert.EqualValues(t, 1, messages)
	assert.EqualValues(t, 1, inquiries)
}

func TestNewsletterSubscribe(t *testing.T) {
	env := newTestEnv(t)
	body := `{"email":"subscriber@example.com"}`

	rec := env.do(t, http.MethodPost, "/api/newsletter/subscribe/", body, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/newsletter/subscribe/", body, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"You are already subscribed."}`, rec.Body.String())
}

func TestListPartners(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/partners", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	require.NoError(t, env.db.Create(&model.Partner{Name: "Laredo Food Bank", Website: "https://laredofoodbank.org"}).Error)

	rec = env.do(t, http.MethodGet, "/api/partners/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var partners []model.Partner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &partners))
	require.Len(t, partners, 1)
	assert.Equal(t, "Laredo Food Bank", partners[0].Name)
	assert.Equal(t, "https://laredofoodbank.org", partners[0].Website)
}

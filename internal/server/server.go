package server

import (
	"context"
	"donation-backend/internal/handler"
	appmw "donation-backend/internal/middleware"
	"donation-backend/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

type Server struct {
	echo            *echo.Echo
	donationHandler *handler.DonationHandler
	siteHandler     *handler.SiteHandler
}

func NewServer(logger zerolog.Logger, donationService service.DonationService, siteService service.SiteService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(appmw.ContextLogger(logger))
	e.Use(appmw.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		donationHandler: handler.NewDonationHandler(donationService),
		siteHandler:     handler.NewSiteHandler(siteService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- donations --------
	donations := api.Group("/donations")
	donations.POST("/checkout", s.donationHandler.CreateCheckout)
	donations.POST("/webhook", s.donationHandler.StripeWebhook)

	// -------- site --------
	api.GET("/events", s.siteHandler.ListEvents)
	api.GET("/partners", s.siteHandler.ListPartners)
	api.POST("/volunteer-signup", s.siteHandler.VolunteerSignup)
	api.POST("/contact", s.siteHandler.Contact)
	api.POST("/partners/inquiry", s.siteHandler.PartnerInquiry)
	api.POST("/newsletter/subscribe", s.siteHandler.NewsletterSubscribe)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

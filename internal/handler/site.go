package handler

import (
	"donation-backend/internal/dto"
	"donation-backend/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type SiteHandler struct {
	siteService service.SiteService
}

func NewSiteHandler(siteService service.SiteService) *SiteHandler {
	return &SiteHandler{
		siteService: siteService,
	}
}

func (h *SiteHandler) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	highlightOnly := false
	if raw := c.QueryParam("highlight"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid highlight filter")
		}
		highlightOnly = v
	}

	events, err := h.siteService.ListEvents(ctx, highlightOnly)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, events)
}

func (h *SiteHandler) ListPartners(c echo.Context) error {
	ctx := c.Request().Context()

	partners, err := h.siteService.ListPartners(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, partners)
}

func (h *SiteHandler) VolunteerSignup(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VolunteerSignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.siteService.SignUpVolunteer(ctx, &req); err != nil {
		return fmt.Errorf("volunteer signup: %w", err)
	}

	return c.JSON(http.StatusCreated, &dto.MessageResponse{Message: "Thank you for signing up to volunteer!"})
}

func (h *SiteHandler) Contact(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.siteService.SubmitContactMessage(ctx, &req); err != nil {
		return fmt.Errorf("contact: %w", err)
	}

	return c.JSON(http.StatusCreated, &dto.MessageResponse{Message: "Your message has been sent."})
}

func (h *SiteHandler) PartnerInquiry(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PartnerInquiryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.siteService.SubmitPartnerInquiry(ctx, &req); err != nil {
		return fmt.Errorf("partner inquiry: %w", err)
	}

	return c.JSON(http.StatusCreated, &dto.MessageResponse{Message: "Thank you for your interest in partnering with us."})
}

func (h *SiteHandler) NewsletterSubscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.NewsletterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.siteService.SubscribeNewsletter(ctx, &req)
	if errors.Is(err, service.ErrDuplicateSubscriber) {
		return c.JSON(http.StatusOK, &dto.MessageResponse{Message: "You are already subscribed."})
	}
	if err != nil {
		return fmt.Errorf("newsletter subscribe: %w", err)
	}

	return c.JSON(http.StatusCreated, &dto.MessageResponse{Message: "Subscribed successfully."})
}

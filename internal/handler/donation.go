package handler

import (
	"donation-backend/internal/dto"
	"donation-backend/internal/service"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const signatureHeader = "Stripe-Signature"

type DonationHandler struct {
	donationService service.DonationService
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

func (h *DonationHandler) CreateCheckout(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CheckoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.donationService.CreateCheckout(ctx, &req)
	if errors.Is(err, service.ErrEventNotFound) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown event")
	}
	if err != nil {
		return fmt.Errorf("create checkout: %w", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *DonationHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	err = h.donationService.HandleWebhook(ctx, body, c.Request().Header.Get(signatureHeader))
	if errors.Is(err, service.ErrAuthentication) {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("rejected webhook")
		return c.NoContent(http.StatusBadRequest)
	}
	if err != nil {
		return fmt.Errorf("handle webhook: %w", err)
	}

	return c.NoContent(http.StatusOK)
}

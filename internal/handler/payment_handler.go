package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"petboard/internal/errors"
	"petboard/internal/service"
)

// PaymentHandler handles the hosted payment checkout endpoint.
type PaymentHandler struct {
	checkoutService service.CheckoutService
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(checkoutService service.CheckoutService) *PaymentHandler {
	return &PaymentHandler{checkoutService: checkoutService}
}

// CreateCheckoutSession godoc
// @Summary Open a hosted payment session and redirect to it
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 303
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /checkout-session [post]
func (h *PaymentHandler) CreateCheckoutSession(c echo.Context) error {
	claims, err := sessionClaims(c)
	if err != nil {
		return err
	}

	url, err := h.checkoutService.CreateCheckoutSession(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err, "could not create checkout session.")
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.Redirect(http.StatusSeeOther, url)
}

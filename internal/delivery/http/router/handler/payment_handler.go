package handler

import (
	"log/slog"
	"net/http"

	"mindset/internal/delivery/http/response"
	"mindset/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler receives payment gateway callbacks.
type PaymentHandler struct {
	uc     usecase.LedgerUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.LedgerUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordPayment handles the post-checkout callback. The gateway may deliver
// the same callback more than once; replays succeed without new side effects.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	var input *usecase.RecordPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment data received")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment data received")
	}

	if err := h.uc.RecordPayment(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"paymentId": input.PaymentID}, "Payment recorded")
}

package handler

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ashuestate/realty-api/internal/api/metrics"
	"github.com/ashuestate/realty-api/internal/core/ports"
)

// PaymentHandler creates payment intents with the external processor.
type PaymentHandler struct {
	provider ports.PaymentProvider
	logger   zerolog.Logger
}

func NewPaymentHandler(provider ports.PaymentProvider, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{provider: provider, logger: logger}
}

type createPaymentIntentRequest struct {
	// Amount is in major currency units (dollars, not cents).
	Amount   float64 `json:"amount"   validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /api/payment/create-payment-intent.
//
// @Summary      Create a payment intent
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        body  body      createPaymentIntentRequest  true  "Amount and currency"
// @Success      200   {object}  createPaymentIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/payment/create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createPaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	currency := req.Currency
	if currency == "" {
		currency = "usd"
	}
	amountCents := int64(math.Round(req.Amount * 100))

	secret, err := h.provider.CreateIntent(c.Request().Context(), amountCents, currency)
	if err != nil {
		metrics.PaymentIntentsTotal.WithLabelValues("failure").Inc()
		h.logger.Error().Err(err).Msg("payment intent creation failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create payment intent")
	}

	metrics.PaymentIntentsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, createPaymentIntentResponse{ClientSecret: secret})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"ucpmaroc-backend/internal/models"
	"ucpmaroc-backend/internal/payments"
)

// PaymentProvider is the subset of the Stripe client the payment handler
// needs.
type PaymentProvider interface {
	ResolveCustomer(email, name string) (string, error)
	CreateIntent(params payments.IntentParams) (*payments.Intent, error)
}

type PaymentsHandler struct {
	provider PaymentProvider
}

func NewPaymentsHandler(provider PaymentProvider) *PaymentsHandler {
	return &PaymentsHandler{
		provider: provider,
	}
}

// CreateIntent godoc
// @Summary     Create a payment intent
// @Description Creates a Stripe payment intent for a checkout amount given in major currency units. When an email is supplied the Stripe customer is found or created so cards can be reattached; a failed customer resolution is not fatal.
// @Tags        payments
// @Accept      json
// @Produce     json
// @Param       request body models.CreatePaymentIntentRequest true "Amount and optional customer details"
// @Success     200 {object} models.PaymentIntentResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /payments/intent [post]
func (h *PaymentsHandler) CreateIntent(c *gin.Context) {
	if h.provider == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "payment provider not available"})
		return
	}

	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "amount must be a positive number"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "mad"
	}

	var customerID string
	if req.Email != "" {
		id, err := h.provider.ResolveCustomer(req.Email, req.Name)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "failed to resolve customer",
				Message: err.Error(),
			})
			return
		}
		customerID = id
	}

	intent, err := h.provider.CreateIntent(payments.IntentParams{
		Amount:           req.Amount,
		Currency:         currency,
		CustomerID:       customerID,
		SetupFutureUsage: req.SetupFutureUsage,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to create payment intent",
			Message: err.Error(),
		})
		return
	}

	if intent.ClientSecret == "" {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "payment intent is missing its client secret; check the Stripe secret key configuration",
		})
		return
	}

	c.JSON(http.StatusOK, models.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		CustomerID:   intent.CustomerID,
	})
}

package payments

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentParams describes a charge in major currency units. MinorUnits
// converts to the smallest denomination Stripe expects.
type IntentParams struct {
	Amount           float64
	Currency         string
	CustomerID       string
	SetupFutureUsage bool
}

func (p IntentParams) MinorUnits() int64 {
	return int64(math.Round(p.Amount * 100))
}

type Intent struct {
	ID           string
	ClientSecret string
	CustomerID   string
}

type Client struct {
	api *client.API
}

func NewClient(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api}
}

// NewClientWithBackend points the Stripe SDK at a custom API URL. Used by
// tests to run against a local mock server.
func NewClientWithBackend(secretKey, backendURL string) *Client {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL: stripe.String(backendURL),
	})
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
	return &Client{api: api}
}

// ResolveCustomer returns the id of the Stripe customer for the given
// email, reusing an existing customer when one exists and creating one
// otherwise. A create call that comes back without an id is not fatal; the
// caller proceeds without a customer.
func (c *Client) ResolveCustomer(email, name string) (string, error) {
	listParams := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	listParams.Limit = stripe.Int64(1)

	iter := c.api.Customers.List(listParams)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", fmt.Errorf("failed to look up customer: %w", err)
	}

	createParams := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	if name != "" {
		createParams.Name = stripe.String(name)
	}

	customer, err := c.api.Customers.New(createParams)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	if customer == nil {
		return "", nil
	}
	return customer.ID, nil
}

// CreateIntent creates a payment intent with automatic payment-method
// selection. The customer id is attached when present, and the card is
// retained for off-session reuse when SetupFutureUsage is set.
func (c *Client) CreateIntent(params IntentParams) (*Intent, error) {
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(params.MinorUnits()),
		Currency: stripe.String(params.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if params.CustomerID != "" {
		intentParams.Customer = stripe.String(params.CustomerID)
	}
	if params.SetupFutureUsage {
		intentParams.SetupFutureUsage = stripe.String(string(stripe.PaymentIntentSetupFutureUsageOffSession))
	}

	intent, err := c.api.PaymentIntents.New(intentParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	result := &Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		CustomerID:   params.CustomerID,
	}
	if intent.Customer != nil {
		result.CustomerID = intent.Customer.ID
	}
	return result, nil
}

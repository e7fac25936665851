package models

type CreateOrderRequest struct {
	OrderID               string  `json:"order_id,omitempty"`
	ActorID               string  `json:"actor_id"`
	ClientName            string  `json:"client_name"`
	ClientEmail           string  `json:"client_email"`
	WordCount             int     `json:"word_count,omitempty"`
	Usage                 string  `json:"usage,omitempty"`
	TotalPrice            float64 `json:"total_price,omitempty"`
	Script                string  `json:"script,omitempty"`
	PaymentMethod         string  `json:"payment_method,omitempty"`
	StripePaymentIntentID string  `json:"stripe_payment_intent_id,omitempty"`
	Status                string  `json:"status,omitempty"`
}

// CreatePaymentIntentRequest carries the amount in major currency units
// (e.g. 70, not 7000); conversion to minor units happens server-side.
type CreatePaymentIntentRequest struct {
	Amount           float64 `json:"amount"`
	Email            string  `json:"email,omitempty"`
	Name             string  `json:"name,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	SetupFutureUsage bool    `json:"setup_future_usage,omitempty"`
}

type AudioCleanupEvent struct {
	JobID       string `json:"jobId"`
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

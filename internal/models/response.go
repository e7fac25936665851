package models

import "time"

type OrderResponse struct {
	ID                    string    `json:"order_id"`
	ActorID               string    `json:"actor_id"`
	ClientID              *string   `json:"client_id"`
	ClientName            string    `json:"client_name"`
	ClientEmail           string    `json:"client_email"`
	WordCount             int       `json:"word_count"`
	Usage                 string    `json:"usage,omitempty"`
	TotalPrice            float64   `json:"total_price"`
	Script                string    `json:"script,omitempty"`
	ProjectNotes          string    `json:"project_notes,omitempty"`
	MaterialFileURLs      []string  `json:"material_file_urls,omitempty"`
	PaymentMethod         string    `json:"payment_method,omitempty"`
	StripePaymentIntentID string    `json:"stripe_payment_intent_id,omitempty"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
	CustomerID   string `json:"customerId,omitempty"`
}

type MaterialsResponse struct {
	OrderID string              `json:"order_id"`
	Notes   string              `json:"notes,omitempty"`
	Files   []MaterialFileInfo  `json:"files"`
	Errors  []MaterialErrorInfo `json:"errors,omitempty"`
}

type MaterialFileInfo struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

type MaterialErrorInfo struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
	Stage    string `json:"stage"`
}

type ActorListResponse struct {
	Actors []Actor `json:"actors"`
}

type RecordingResponse struct {
	ID               string    `json:"id"`
	ActorID          string    `json:"actor_id"`
	Title            string    `json:"title,omitempty"`
	OriginalAudioURL string    `json:"original_audio_url"`
	CleanupJobID     string    `json:"cleanup_job_id,omitempty"`
	Status           string    `json:"status"`
	CleanedAudioURL  string    `json:"cleaned_audio_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID                    uuid.UUID
	ActorID               uuid.UUID
	ClientID              uuid.NullUUID
	ClientName            string
	ClientEmail           string
	WordCount             int
	Usage                 string
	TotalPrice            float64
	Script                sql.NullString
	ProjectNotes          sql.NullString
	MaterialFileURLs      []string
	PaymentMethod         string
	StripePaymentIntentID sql.NullString
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

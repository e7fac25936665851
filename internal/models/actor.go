package models

import (
	"time"

	"github.com/google/uuid"
)

// Actor is a talent profile capable of fulfilling orders. Rows are created
// at sign-up; the profile slug is derived from the display name by a
// database trigger.
type Actor struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
}

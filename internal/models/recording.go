package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Recording statuses. A recording starts in processing when its cleanup job
// is submitted and is moved to cleaned or error by the webhook handler.
const (
	RecordingStatusProcessing = "processing"
	RecordingStatusCleaned    = "cleaned"
	RecordingStatusError      = "error"
)

type ActorRecording struct {
	ID               uuid.UUID
	ActorID          uuid.UUID
	Title            string
	OriginalAudioURL string
	CleanupJobID     sql.NullString
	Status           string
	CleanedAudioURL  sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

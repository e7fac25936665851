package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"ucpmaroc-backend/internal/audioclean"
	"ucpmaroc-backend/internal/config"
	"ucpmaroc-backend/internal/models"
)

// RecordingUpdater is the subset of the database client the webhook needs.
type RecordingUpdater interface {
	MarkRecordingCleaned(jobID, cleanedAudioURL string) error
	MarkRecordingFailed(jobID string) error
}

type WebhookHandler struct {
	config *config.Config
	store  RecordingUpdater
}

func NewWebhookHandler(cfg *config.Config, store RecordingUpdater) *WebhookHandler {
	return &WebhookHandler{
		config: cfg,
		store:  store,
	}
}

// HandleAudioCleanup godoc
// @Summary     Audio cleanup webhook endpoint
// @Description Receives job-completion callbacks from the audio cleanup service and updates the matching recording row. Statuses outside succeeded/failed are acknowledged without an update. The upstream service has no signing mechanism, so verification is limited to an optional shared secret header.
// @Tags        webhooks
// @Accept      json
// @Produce     json
// @Param       X-Webhook-Secret header string false "Shared secret (required when configured)"
// @Param       request body models.AudioCleanupEvent true "Job result"
// @Success     200 {object} map[string]string "status"
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /webhooks/audio-cleanup [post]
func (h *WebhookHandler) HandleAudioCleanup(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	// The cleanup service does not sign callbacks; a shared secret header is
	// the strongest check available and is enforced only when configured.
	if h.config.AudioCleanupWebhookSecret != "" {
		secret := c.GetHeader("X-Webhook-Secret")
		if subtle.ConstantTimeCompare([]byte(secret), []byte(h.config.AudioCleanupWebhookSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid webhook secret"})
			return
		}
	}

	var event models.AudioCleanupEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse event",
			Message: err.Error(),
		})
		return
	}

	if event.JobID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "jobId is required"})
		return
	}

	switch event.Status {
	case audioclean.StatusSucceeded:
		if event.DownloadURL == "" {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: "succeeded event is missing downloadUrl",
			})
			return
		}
		if err := h.store.MarkRecordingCleaned(event.JobID, event.DownloadURL); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to update recording",
				Message: err.Error(),
			})
			return
		}

	case audioclean.StatusFailed:
		if err := h.store.MarkRecordingFailed(event.JobID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to update recording",
				Message: err.Error(),
			})
			return
		}

	default:
		// Intermediate statuses (queued, processing, ...) are acknowledged
		// without touching the row.
		log.Printf("audio cleanup webhook: ignoring status %q for job %s", event.Status, event.JobID)
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handlers

import (
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"ucpmaroc-backend/internal/models"
)

// RecordingStore is the subset of the database client the recordings
// handler needs.
type RecordingStore interface {
	CreateRecording(rec *models.ActorRecording) (*models.ActorRecording, error)
	GetRecording(recordingID uuid.UUID) (*models.ActorRecording, error)
	SetRecordingJobID(recordingID uuid.UUID, jobID string) error
}

// RecordingUploader uploads a raw recording and returns its public URL.
type RecordingUploader interface {
	UploadRecording(actorID uuid.UUID, filename, contentType string, data []byte) (string, error)
}

// CleanupSubmitter enqueues a cleanup job with the external audio service.
type CleanupSubmitter interface {
	SubmitJob(audioURL, callbackURL string) (string, error)
}

type RecordingsHandler struct {
	store       RecordingStore
	uploader    RecordingUploader
	cleanup     CleanupSubmitter
	callbackURL string
}

func NewRecordingsHandler(store RecordingStore, uploader RecordingUploader, cleanup CleanupSubmitter, callbackURL string) *RecordingsHandler {
	return &RecordingsHandler{
		store:       store,
		uploader:    uploader,
		cleanup:     cleanup,
		callbackURL: callbackURL,
	}
}

// CreateRecording godoc
// @Summary     Upload a demo recording
// @Description Uploads the actor's raw audio to storage, creates the recording row in the processing state and submits a cleanup job to the audio service. The job result arrives later on the webhook.
// @Tags        recordings
// @Accept      multipart/form-data
// @Produce     json
// @Security    Bearer
// @Param       title formData string false "Recording title"
// @Param       audio formData file true "Audio file"
// @Success     200 {object} models.RecordingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /recordings [post]
func (h *RecordingsHandler) CreateRecording(c *gin.Context) {
	if h.store == nil || h.uploader == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "storage not available"})
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "audio file is required",
			Message: err.Error(),
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to open file",
			Message: err.Error(),
		})
		return
	}
	data, err := io.ReadAll(src)
	src.Close()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read file data",
			Message: err.Error(),
		})
		return
	}

	audioURL, err := h.uploader.UploadRecording(actorID, file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to upload recording",
			Message: err.Error(),
		})
		return
	}

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		title = file.Filename
	}

	rec := &models.ActorRecording{
		ID:               uuid.New(),
		ActorID:          actorID,
		Title:            title,
		OriginalAudioURL: audioURL,
		Status:           models.RecordingStatusProcessing,
	}

	inserted, err := h.store.CreateRecording(rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create recording",
			Message: err.Error(),
		})
		return
	}

	// The cleanup service is optional in development; without it the
	// recording simply stays in the processing state.
	if h.cleanup != nil {
		jobID, err := h.cleanup.SubmitJob(audioURL, h.callbackURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to submit cleanup job",
				Message: err.Error(),
			})
			return
		}
		if err := h.store.SetRecordingJobID(inserted.ID, jobID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "failed to save cleanup job id",
				Message: err.Error(),
			})
			return
		}
		inserted.CleanupJobID = sql.NullString{String: jobID, Valid: true}
	}

	c.JSON(http.StatusOK, recordingResponse(inserted))
}

// GetRecording godoc
// @Summary     Get a recording
// @Tags        recordings
// @Produce     json
// @Security    Bearer
// @Param       recording_id path string true "Recording ID (UUID)"
// @Success     200 {object} models.RecordingResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /recordings/{recording_id} [get]
func (h *RecordingsHandler) GetRecording(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database not available"})
		return
	}

	actorID, ok := actorIDFromContext(c)
	if !ok {
		return
	}

	recordingID, err := uuid.Parse(c.Param("recording_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid recording id"})
		return
	}

	rec, err := h.store.GetRecording(recordingID)
	if err != nil || rec.ActorID != actorID {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("recording %s not found", recordingID)})
		return
	}

	c.JSON(http.StatusOK, recordingResponse(rec))
}

func recordingResponse(rec *models.ActorRecording) models.RecordingResponse {
	response := models.RecordingResponse{
		ID:               rec.ID.String(),
		ActorID:          rec.ActorID.String(),
		Title:            rec.Title,
		OriginalAudioURL: rec.OriginalAudioURL,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
	if rec.CleanupJobID.Valid {
		response.CleanupJobID = rec.CleanupJobID.String
	}
	if rec.CleanedAudioURL.Valid {
		response.CleanedAudioURL = rec.CleanedAudioURL.String
	}
	return response
}

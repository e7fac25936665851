package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ucpmaroc-backend/internal/config"
	"ucpmaroc-backend/internal/handlers"
	"ucpmaroc-backend/internal/models"
)

type stubRecordingUpdater struct {
	cleanedJobID string
	cleanedURL   string
	failedJobID  string
	updateErr    error
}

func (s *stubRecordingUpdater) MarkRecordingCleaned(jobID, cleanedAudioURL string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.cleanedJobID = jobID
	s.cleanedURL = cleanedAudioURL
	return nil
}

func (s *stubRecordingUpdater) MarkRecordingFailed(jobID string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.failedJobID = jobID
	return nil
}

func newWebhookRouter(cfg *config.Config, store *stubRecordingUpdater) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.POST("/webhooks/audio-cleanup", handlers.NewWebhookHandler(cfg, store).HandleAudioCleanup)
	return router
}

func postWebhook(router *gin.Engine, event models.AudioCleanupEvent, headers map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(event)
	req, _ := http.NewRequest("POST", "/webhooks/audio-cleanup", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhook_SucceededUpdatesRecording(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		JobID:       "abc",
		Status:      "succeeded",
		DownloadURL: "http://x",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", store.cleanedJobID)
	assert.Equal(t, "http://x", store.cleanedURL)
}

func TestWebhook_SucceededWithoutDownloadURL(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		JobID:  "abc",
		Status: "succeeded",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, store.cleanedJobID)
}

func TestWebhook_FailedMarksError(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		JobID:  "abc",
		Status: "failed",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", store.failedJobID)
}

func TestWebhook_UnknownStatusAcknowledged(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		JobID:  "abc",
		Status: "queued",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.cleanedJobID)
	assert.Empty(t, store.failedJobID)
}

func TestWebhook_MissingJobID(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		Status:      "succeeded",
		DownloadURL: "http://x",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.cleanedJobID)
}

func TestWebhook_UpdateFailure(t *testing.T) {
	store := &stubRecordingUpdater{updateErr: assert.AnError}
	router := newWebhookRouter(&config.Config{}, store)

	w := postWebhook(router, models.AudioCleanupEvent{
		JobID:       "abc",
		Status:      "succeeded",
		DownloadURL: "http://x",
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWebhook_SharedSecret(t *testing.T) {
	cfg := &config.Config{AudioCleanupWebhookSecret: "s3cret"}
	event := models.AudioCleanupEvent{JobID: "abc", Status: "failed"}

	store := &stubRecordingUpdater{}
	router := newWebhookRouter(cfg, store)

	w := postWebhook(router, event, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.failedJobID)

	w = postWebhook(router, event, map[string]string{"X-Webhook-Secret": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postWebhook(router, event, map[string]string{"X-Webhook-Secret": "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", store.failedJobID)
}

func TestWebhook_NonPostRejected(t *testing.T) {
	store := &stubRecordingUpdater{}
	router := newWebhookRouter(&config.Config{}, store)

	req, _ := http.NewRequest("GET", "/webhooks/audio-cleanup", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

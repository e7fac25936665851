package audioclean

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Job statuses reported by the cleanup service, both in job reads and in
// webhook callbacks.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type SubmitJobRequest struct {
	AudioURL    string `json:"audio_url"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type JobResponse struct {
	JobID       string `json:"jobId"`
	Status      string `json:"status"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SubmitJob enqueues a cleanup job for the given audio file. Completion is
// reported asynchronously to the callback URL; there is no polling loop
// here.
func (c *Client) SubmitJob(audioURL, callbackURL string) (string, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/jobs"

	jsonData, err := json.Marshal(SubmitJobRequest{
		AudioURL:    audioURL,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("failed to submit job: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result JobResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	if result.JobID == "" {
		return "", fmt.Errorf("jobId is empty in response, body: %s", string(body))
	}

	return result.JobID, nil
}

func (c *Client) GetJob(jobID string) (*JobResponse, error) {
	url := strings.TrimSuffix(c.baseURL, "/") + "/jobs/" + jobID

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get job: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result JobResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w, body: %s", err, string(body))
	}

	return &result, nil
}

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pointmotion/engage-backend/internal/logger"
	"github.com/pointmotion/engage-backend/internal/metrics"
)

// Config holds the notification provider connection settings. Credentials
// are injected from configuration, never embedded in the binary.
type Config struct {
	BaseURL   string
	ProjectID string
	APIKey    string
}

// Notifier sends workflow-triggered notifications to patients
type Notifier interface {
	// Trigger fires one provider workflow for a patient. Payload becomes
	// the workflow's template variables.
	Trigger(ctx context.Context, workflow, patientID string, payload map[string]interface{}) error
}

// Client is an HTTP Notifier implementation. A zero BaseURL disables
// sending; Trigger becomes a no-op so callers never need to branch.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new notification client
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// Enabled reports whether the client has a provider configured
func (c *Client) Enabled() bool {
	return c.cfg.BaseURL != ""
}

// Trigger fires a provider workflow for a patient
func (c *Client) Trigger(ctx context.Context, workflow, patientID string, payload map[string]interface{}) error {
	log := logger.FromContext(ctx)

	if !c.Enabled() {
		log.Debug(LogMsgNotifierNotEnabled, "workflow", workflow)
		return nil
	}

	body := map[string]interface{}{
		"name":       workflow,
		"project_id": c.cfg.ProjectID,
		"to": map[string]interface{}{
			"subscriber_id": patientID,
		},
		"payload": payload,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgMarshalPayload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+TriggerPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCreateRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.NotificationErrors.WithLabelValues(workflow).Inc()
		return fmt.Errorf("%s: %w", ErrMsgSendRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.NotificationErrors.WithLabelValues(workflow).Inc()
		return fmt.Errorf(ErrMsgBadStatus, resp.StatusCode)
	}

	metrics.NotificationsSent.WithLabelValues(workflow).Inc()
	log.Info(LogMsgNotificationSent, "workflow", workflow, "patient_id", patientID)
	return nil
}

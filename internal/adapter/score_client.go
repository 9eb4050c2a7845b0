// Package adapter holds outbound HTTP integrations. Its one client is the
// codex-side notifier that reports item pickups to the score server.
package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/models"
)

// ScoreServerClientConfig configures the outbound connection to the score
// server.
type ScoreServerClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

// scoreServerClient posts pickup notifications to the score server over
// HTTP/JSON. Callers treat it as fire-and-forget: an error return is for
// logging only and must never abort the caller's own operation.
type scoreServerClient struct {
	client *resty.Client
	logger *logger.Logger
}

// NewScoreServerClient constructs the notifier with sane fallbacks for an
// empty base URL or zero timeout.
func NewScoreServerClient(cfg ScoreServerClientConfig, log *logger.Logger) *scoreServerClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &scoreServerClient{client: cli, logger: log}
}

// NotifyPickup posts one pickup-log record to the score server. Any
// non-201 status is reported as an error so the caller can log it.
func (c *scoreServerClient) NotifyPickup(ctx context.Context, req models.LogPickupRequest) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/log_item_pickup")
	if err != nil {
		return fmt.Errorf("pickup notification failed: %w", err)
	}

	if resp.StatusCode() != http.StatusCreated {
		return fmt.Errorf("pickup notification rejected: status %d", resp.StatusCode())
	}

	return nil
}

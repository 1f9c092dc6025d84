package leadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lead-intake-agent/internal/lead"
	pkgLog "lead-intake-agent/pkg/log"
)

const (
	// DefaultTimeout bounds one submission.
	DefaultTimeout = 50 * time.Second

	messagePath    = "/admin/message"
	publicIDHeader = "public-id"
)

// Client is the HTTP wrapper for the downstream lead-management API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	l          pkgLog.Logger
}

// NewClient creates a new lead API client. A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, l pkgLog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		l:          l,
	}
}

// Submit sends the record via POST {baseURL}/admin/message.
// Success is exactly 201 with a public-id header.
func (c *Client) Submit(ctx context.Context, rec lead.Record) (string, error) {
	url := c.baseURL + messagePath

	body, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("failed to marshal lead: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to build lead request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.l.Debugf(ctx, "internal.lead.repository.leadapi.Submit: POST %s", url)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", lead.ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", lead.ErrSubmitFailed, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	id := strings.TrimSpace(resp.Header.Get(publicIDHeader))
	if id == "" {
		return "", lead.ErrMissingPublicID
	}
	return id, nil
}

// Package relay notifies the outbound email relay about new leads. Callers
// treat it as fire-and-forget: a relay failure is logged, never surfaced.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Notification struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Budget        string `json:"budget"`
	Message       string `json:"message"`
	ReferenceCode string `json:"referenceCode"`
	Summary       string `json:"summary"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, n Notification) error {
	payload, _ := json.Marshal(n)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var result struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&result)
		return fmt.Errorf("relay: status %d %s", resp.StatusCode, result.Message)
	}
	return nil
}

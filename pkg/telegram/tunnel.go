package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoTunnel is returned when the ngrok agent answers but exposes no tunnel.
var ErrNoTunnel = errors.New("telegram: ngrok has no active tunnels")

type tunnelsResponse struct {
	Tunnels []tunnel `json:"tunnels"`
}

type tunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// TunnelDetector finds the public URL of a local ngrok agent so the webhook can
// be registered without configuring a URL by hand.
type TunnelDetector struct {
	APIBase  string
	Attempts int
	Interval time.Duration
	client   *http.Client
}

// NewTunnelDetector polls apiBase/api/tunnels up to attempts times.
func NewTunnelDetector(apiBase string, attempts int, interval time.Duration) *TunnelDetector {
	if attempts <= 0 {
		attempts = 1
	}
	return &TunnelDetector{
		APIBase:  apiBase,
		Attempts: attempts,
		Interval: interval,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Detect returns the first HTTPS tunnel URL, or any tunnel when none is HTTPS.
// The agent may still be starting, so failures are retried.
func (d *TunnelDetector) Detect(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= d.Attempts; attempt++ {
		url, err := d.fetch(ctx)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if attempt == d.Attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.Interval):
		}
	}
	return "", fmt.Errorf("ngrok tunnel not found after %d attempts: %w", d.Attempts, lastErr)
}

func (d *TunnelDetector) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.APIBase+"/api/tunnels", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create ngrok API request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels tunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("failed to decode ngrok API response: %w", err)
	}

	for _, t := range tunnels.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(tunnels.Tunnels) > 0 {
		return tunnels.Tunnels[0].PublicURL, nil
	}
	return "", ErrNoTunnel
}

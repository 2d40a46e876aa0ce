package telegram_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"voice-task-assistant/pkg/telegram"
)

func TestTunnelDetector(t *testing.T) {
	t.Run("prefers https", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/tunnels" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`))
		}))
		defer ts.Close()

		url, err := telegram.NewTunnelDetector(ts.URL, 1, 0).Detect(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "https://a.ngrok.io" {
			t.Errorf("url = %q", url)
		}
	})

	t.Run("retries until a tunnel appears", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) < 3 {
				w.Write([]byte(`{"tunnels":[]}`))
				return
			}
			w.Write([]byte(`{"tunnels":[{"public_url":"http://b.ngrok.io","proto":"http"}]}`))
		}))
		defer ts.Close()

		url, err := telegram.NewTunnelDetector(ts.URL, 5, time.Millisecond).Detect(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if url != "http://b.ngrok.io" {
			t.Errorf("url = %q", url)
		}
	})

	t.Run("gives up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels":[]}`))
		}))
		defer ts.Close()

		_, err := telegram.NewTunnelDetector(ts.URL, 2, time.Millisecond).Detect(context.Background())
		if !errors.Is(err, telegram.ErrNoTunnel) {
			t.Fatalf("expected ErrNoTunnel, got %v", err)
		}
	})
}

package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"voice-task-assistant/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc, calendarID string) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewFromHTTP(context.Background(), httpClient, calendarID)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	t.Run("empty credentials path", func(t *testing.T) {
		_, err := gcalendar.New(ctx, gcalendar.Config{})
		if !errors.Is(err, gcalendar.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: filepath.Join(dir, "nope.json")})
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("broken credentials", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json", `{"broken":true}`)
		_, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: path})
		if !errors.Is(err, gcalendar.ErrUnsupportedCredentials) {
			t.Errorf("expected ErrUnsupportedCredentials, got %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		path := writeFile(t, dir, "installed.json", installedCreds)
		_, err := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: path,
			TokenPath:       filepath.Join(dir, "missing-token.json"),
		})
		if !errors.Is(err, gcalendar.ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		creds := writeFile(t, dir, "installed.json", installedCreds)
		token := writeFile(t, dir, "bad-token.json", `{"broken": true`)
		_, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: token})
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		creds := writeFile(t, dir, "installed.json", installedCreds)
		token := writeFile(t, dir, "token.json", `{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`)
		client, err := gcalendar.New(ctx, gcalendar.Config{CredentialsPath: creds, TokenPath: token})
		if err != nil {
			t.Fatalf("expected client, got %v", err)
		}
		if client == nil {
			t.Fatal("nil client")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)

	t.Run("uses client calendar and reminder override", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/tasks@example.com/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "summary": "buy milk", "htmlLink": "https://calendar.google.com/event-uri"}`))
		}, "tasks@example.com")

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:         "buy milk",
			Description:     "Priority: high",
			StartTime:       start,
			EndTime:         start.Add(time.Hour),
			Timezone:        "UTC",
			ReminderMinutes: 30,
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}
		if !event.StartTime.Equal(start) {
			t.Errorf("start = %v, want %v", event.StartTime, start)
		}

		reminders, ok := body["reminders"].(map[string]any)
		if !ok {
			t.Fatalf("reminders missing from request body: %v", body)
		}
		if reminders["useDefault"] != false {
			t.Errorf("useDefault = %v, want false", reminders["useDefault"])
		}
	})

	t.Run("defaults to primary calendar", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "event-1"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}, "")

		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "call mom",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-1" {
			t.Errorf("unexpected id: %s", event.ID)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}, "")

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Title",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
		})
		if err == nil {
			t.Fatal("expected api error")
		}
	})
}

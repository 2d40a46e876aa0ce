package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is used when neither the client nor the request names a calendar.
const DefaultCalendarID = "primary"

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// New creates a Calendar client from the credentials file in cfg.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, ErrMissingCredentials
	}
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	ts, err := tokenSource(ctx, data, cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: cfg.CalendarID}, nil
}

// NewFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, calendarID string) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

// tokenSource accepts a Service Account key or OAuth2 installed-app credentials
// paired with a previously issued token file.
func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		return jwtConfig.TokenSource(ctx), nil
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingToken, tokenPath)
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return oauthConfig.TokenSource(ctx, &tok), nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.ReminderMinutes > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: int64(req.ReminderMinutes)}},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(c.resolveCalendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}

func (c *Client) resolveCalendarID(id string) string {
	switch {
	case id != "":
		return id
	case c.calendarID != "":
		return c.calendarID
	default:
		return DefaultCalendarID
	}
}

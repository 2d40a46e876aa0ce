package gcalendar

import (
	"errors"
	"time"
)

// DefaultTokenPath is where an OAuth2 installed-app token is looked up.
const DefaultTokenPath = "token.json"

var (
	ErrMissingCredentials     = errors.New("gcalendar: credentials path is empty")
	ErrUnsupportedCredentials = errors.New("gcalendar: unsupported credentials format")
	ErrMissingToken           = errors.New("gcalendar: installed-app credentials need a token file")
)

// Config locates the Google credentials used by New.
type Config struct {
	CredentialsPath string
	// TokenPath is only read for OAuth2 installed-app credentials.
	TokenPath  string
	CalendarID string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Asia/Ho_Chi_Minh"
	// ReminderMinutes adds a popup reminder; zero keeps the calendar default.
	ReminderMinutes int
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

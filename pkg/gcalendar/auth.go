package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// Authorizer runs the one-time OAuth2 installed-app flow that produces the
// token file New reads.
type Authorizer struct {
	config *oauth2.Config
}

// NewAuthorizer reads OAuth2 Desktop App credentials.
func NewAuthorizer(credentialsPath string) (*Authorizer, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
	}
	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}
	return &Authorizer{config: cfg}, nil
}

// AuthCodeURL is the page the user opens to grant calendar access.
func (a *Authorizer) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades the pasted authorization code for a token and saves it.
func (a *Authorizer) Exchange(ctx context.Context, code, tokenPath string) (*oauth2.Token, error) {
	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := SaveToken(tokenPath, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// SaveToken writes tok as JSON readable only by the owner.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

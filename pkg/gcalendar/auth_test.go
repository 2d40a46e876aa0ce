package gcalendar_test

import (
	"context"
	"errors"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"voice-task-assistant/pkg/gcalendar"
)

func TestAuthorizer(t *testing.T) {
	dir := t.TempDir()

	t.Run("auth url asks for offline access", func(t *testing.T) {
		a, err := gcalendar.NewAuthorizer(writeFile(t, dir, "installed.json", installedCreds))
		if err != nil {
			t.Fatalf("NewAuthorizer: %v", err)
		}
		u, err := url.Parse(a.AuthCodeURL("state-token"))
		if err != nil {
			t.Fatalf("parse url: %v", err)
		}
		q := u.Query()
		if q.Get("access_type") != "offline" || q.Get("state") != "state-token" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("client_id") != "test-client-id.apps.googleusercontent.com" {
			t.Errorf("client_id = %q", q.Get("client_id"))
		}
	})

	t.Run("rejects non installed-app credentials", func(t *testing.T) {
		_, err := gcalendar.NewAuthorizer(writeFile(t, dir, "broken.json", `{"broken":true}`))
		if !errors.Is(err, gcalendar.ErrUnsupportedCredentials) {
			t.Errorf("expected ErrUnsupportedCredentials, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := gcalendar.NewAuthorizer(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error")
		}
	})
}

func TestSaveToken_UsableByNew(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "secrets", "token.json")

	err := gcalendar.SaveToken(tokenPath, &oauth2.Token{
		AccessToken: "dummy",
		TokenType:   "Bearer",
		Expiry:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	_, err = gcalendar.New(context.Background(), gcalendar.Config{
		CredentialsPath: writeFile(t, dir, "installed.json", installedCreds),
		TokenPath:       tokenPath,
	})
	if err != nil {
		t.Fatalf("New with saved token: %v", err)
	}
}

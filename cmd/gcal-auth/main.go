// Command gcal-auth authorizes Google Calendar access once and writes the token
// file read by the task use case when google_calendar.enabled is set.
//
// Usage:
//
//	go run ./cmd/gcal-auth
package main

import (
	"context"
	"fmt"
	"os"

	"voice-task-assistant/config"
	"voice-task-assistant/pkg/gcalendar"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	credsPath := cfg.GoogleCalendar.CredentialsPath
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := cfg.GoogleCalendar.TokenPath
	if tokenPath == "" {
		tokenPath = gcalendar.DefaultTokenPath
	}

	auth, err := gcalendar.NewAuthorizer(credsPath)
	if err != nil {
		fmt.Printf("%v\nMake sure %q is an OAuth Desktop App credentials file.\n", err, credsPath)
		os.Exit(1)
	}

	fmt.Println("Step 1: open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(auth.AuthCodeURL("state-token"))
	fmt.Println()
	fmt.Print("Step 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		fmt.Println("Failed to read authorization code: ", err)
		os.Exit(1)
	}

	if _, err := auth.Exchange(context.Background(), code, tokenPath); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("\nToken saved to %s. Set google_calendar.enabled: true and restart the assistant.\n", tokenPath)
}

// Package speech defines the speech-to-text and text-to-speech collaborators
// used by the voice loop, plus console and external-process implementations.
package speech

import (
	"context"
	"errors"
	"strings"
)

// NoRecognition is what a recognizer yields when it heard nothing usable.
const NoRecognition = "no recognition result"

// ErrClosed is returned by a Recognizer or Speaker used after Close.
var ErrClosed = errors.New("speech: closed")

// Recognizer turns captured audio into command text.
type Recognizer interface {
	// Listen blocks until one utterance is recognized. It returns NoRecognition
	// (and a nil error) when nothing usable was heard.
	Listen(ctx context.Context) (string, error)
	Close() error
}

// Speaker reads text out loud.
type Speaker interface {
	Speak(ctx context.Context, text string) error
	Close() error
}

// IsNoInput reports whether a recognized text carries no actionable command.
func IsNoInput(text string) bool {
	text = strings.TrimSpace(text)
	return text == "" || strings.EqualFold(text, NoRecognition)
}

package assistant

import "voice-task-assistant/internal/router"

// Reply is what the assistant says back.
type Reply struct {
	Text   string        `json:"text"`
	Intent router.Intent `json:"intent"`
	// Exit asks the voice loop to stop listening.
	Exit bool `json:"exit,omitempty"`
	// NoInput marks a recognizer result that carried nothing to act on.
	NoInput bool `json:"no_input,omitempty"`
}

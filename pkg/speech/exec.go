package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// DefaultSpeakTimeout bounds one synthesis run.
const DefaultSpeakTimeout = 30 * time.Second

// ExecSpeaker pipes text to an external text-to-speech program such as espeak
// or say. The text is passed on stdin so it never reaches a shell.
type ExecSpeaker struct {
	mu      sync.Mutex
	command string
	args    []string
	timeout time.Duration
	closed  bool
	next    Speaker // optional echo, e.g. the console speaker
}

// NewExecSpeaker builds a speaker running command with args. next, if non-nil,
// also receives every text.
func NewExecSpeaker(command string, args []string, timeout time.Duration, next Speaker) (*ExecSpeaker, error) {
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("speech: tts command is required")
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("speech: tts command %q: %w", command, err)
	}
	if timeout <= 0 {
		timeout = DefaultSpeakTimeout
	}
	return &ExecSpeaker{command: command, args: args, timeout: timeout, next: next}, nil
}

// Speak blocks until the program has finished reading text.
func (s *ExecSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if s.next != nil {
		if err := s.next.Speak(ctx, text); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speech: %s: %w: %s", s.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *ExecSpeaker) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.next != nil {
		return s.next.Close()
	}
	return nil
}

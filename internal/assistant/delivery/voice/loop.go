// Package voice runs the assistant over a speech recognizer and speaker.
package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	pkgLog "voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/speech"
)

const (
	// MaxListenFailures consecutive recognizer errors stop the loop.
	MaxListenFailures = 5

	defaultListenBackoff = 500 * time.Millisecond
)

// ErrRecognizerFailed is returned by Run when the recognizer keeps failing.
var ErrRecognizerFailed = errors.New("voice: recognizer keeps failing")

// Loop serializes commands: one utterance is handled and answered before the
// next one is heard.
type Loop struct {
	l          pkgLog.Logger
	uc         assistant.UseCase
	recognizer speech.Recognizer
	speaker    speech.Speaker
	sc         model.Scope
	backoff    time.Duration
}

// New creates a voice loop for the local user.
func New(l pkgLog.Logger, uc assistant.UseCase, recognizer speech.Recognizer, speaker speech.Speaker) *Loop {
	return &Loop{
		l:          l,
		uc:         uc,
		recognizer: recognizer,
		speaker:    speaker,
		sc:         model.VoiceScope,
		backoff:    defaultListenBackoff,
	}
}

// SetListenBackoff sets the base pause after a failed Listen. The pause grows
// linearly with consecutive failures.
func (lp *Loop) SetListenBackoff(d time.Duration) {
	lp.backoff = d
}

// Run listens until ctx is done, the recognizer is exhausted or the user says
// goodbye. A failing command never stops the loop; MaxListenFailures recognizer
// errors in a row do.
func (lp *Loop) Run(ctx context.Context) error {
	failures := 0
	for {
		text, err := lp.recognizer.Listen(ctx)
		switch {
		case err == nil:
			failures = 0
		case errors.Is(err, io.EOF), errors.Is(err, speech.ErrClosed):
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			failures++
			lp.l.Warnf(ctx, "voice.Loop.Run: listen failed (%d/%d): %v", failures, MaxListenFailures, err)
			if failures >= MaxListenFailures {
				return fmt.Errorf("%w: %v", ErrRecognizerFailed, err)
			}
			if err := wait(ctx, lp.backoff*time.Duration(failures)); err != nil {
				return err
			}
			continue
		}

		reply, err := lp.uc.Handle(ctx, lp.sc, text)
		if err != nil {
			lp.l.Errorf(ctx, "voice.Loop.Run: %v", err)
		}
		if reply.NoInput {
			continue
		}

		lp.Say(ctx, reply.Text)
		if reply.Exit {
			return nil
		}
	}
}

// Say speaks text; speaker failures are logged only.
func (lp *Loop) Say(ctx context.Context, text string) {
	if err := lp.speaker.Speak(ctx, text); err != nil {
		lp.l.Warnf(ctx, "voice.Loop.Say: %v", err)
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

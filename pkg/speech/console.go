package speech

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	replyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

type line struct {
	text string
	err  error
}

// ConsoleRecognizer treats each typed line as one utterance.
type ConsoleRecognizer struct {
	out    io.Writer
	prompt string
	lines  chan line
	done   chan struct{}
	once   sync.Once
}

// NewConsoleRecognizer reads utterances from in. A non-nil out receives a prompt
// before each Listen.
func NewConsoleRecognizer(in io.Reader, out io.Writer) *ConsoleRecognizer {
	r := &ConsoleRecognizer{
		out:    out,
		prompt: promptStyle.Render("you> "),
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
	go r.scan(in)
	return r
}

func (r *ConsoleRecognizer) scan(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case r.lines <- line{text: scanner.Text()}:
		case <-r.done:
			return
		}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case r.lines <- line{err: err}:
	case <-r.done:
	}
}

// Listen returns the next line, NoRecognition for a blank line, or io.EOF when
// the input is exhausted.
func (r *ConsoleRecognizer) Listen(ctx context.Context) (string, error) {
	select {
	case <-r.done:
		return "", ErrClosed
	default:
	}
	if r.out != nil {
		fmt.Fprint(r.out, r.prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", ErrClosed
	case l := <-r.lines:
		if l.err != nil {
			return "", l.err
		}
		if strings.TrimSpace(l.text) == "" {
			return NoRecognition, nil
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Close stops the reader goroutine once it next wakes.
func (r *ConsoleRecognizer) Close() error {
	r.once.Do(func() { close(r.done) })
	return nil
}

// ConsoleSpeaker prints replies with the assistant's name as a styled prefix.
type ConsoleSpeaker struct {
	mu     sync.Mutex
	out    io.Writer
	prefix string
	closed bool
}

// NewConsoleSpeaker writes replies to out.
func NewConsoleSpeaker(out io.Writer, name string) *ConsoleSpeaker {
	if name == "" {
		name = "assistant"
	}
	return &ConsoleSpeaker{
		out:    out,
		prefix: nameStyle.Render(strings.ToLower(name) + "> "),
	}
}

func (s *ConsoleSpeaker) Speak(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := fmt.Fprintln(s.out, s.prefix+replyStyle.Render(text))
	return err
}

func (s *ConsoleSpeaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/router"
	pkgLog "voice-task-assistant/pkg/log"
	pkgTelegram "voice-task-assistant/pkg/telegram"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockAssistant struct {
	mu    sync.Mutex
	texts []string
	scope model.Scope
}

func (m *mockAssistant) Handle(ctx context.Context, sc model.Scope, text string) (assistant.Reply, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, text)
	m.scope = sc
	return assistant.Reply{Text: "echo: " + text, Intent: router.IntentUnknown}, nil
}

type capture struct {
	mu       sync.Mutex
	messages []string
}

func (c *capture) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, s)
}

func (c *capture) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// ── Test Helpers ───────────────────────────────────────────────────────────

func newTestHandler(t *testing.T, allowed int64) (*handler, *mockAssistant, *capture) {
	t.Helper()

	captured := &capture{}
	tgServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/sendMessage") {
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if text, ok := payload["text"].(string); ok {
				captured.add(text)
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(tgServer.Close)

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(tgServer.URL)

	uc := &mockAssistant{}
	h := New(pkgLog.NewNop(), uc, bot, allowed).(*handler)
	return h, uc, captured
}

func message(chatID int64, text string) *pkgTelegram.Message {
	return &pkgTelegram.Message{
		MessageID: 1,
		Chat:      &pkgTelegram.Chat{ID: chatID},
		From:      &pkgTelegram.User{ID: 456, Username: "alice"},
		Text:      text,
	}
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("command is answered with the reply", func(t *testing.T) {
		h, uc, captured := newTestHandler(t, 0)
		if err := h.processMessage(ctx, message(123, "task statistics")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := captured.all(); len(got) != 1 || got[0] != "echo: task statistics" {
			t.Errorf("unexpected messages %v", got)
		}
		if uc.scope.UserID != "telegram_456" || uc.scope.Username != "alice" {
			t.Errorf("unexpected scope %+v", uc.scope)
		}
	})

	t.Run("built-in commands skip the assistant", func(t *testing.T) {
		h, uc, captured := newTestHandler(t, 0)
		h.processMessage(ctx, message(123, "/start"))
		h.processMessage(ctx, message(123, "/help"))

		if len(uc.texts) != 0 {
			t.Errorf("assistant should not be called, got %v", uc.texts)
		}
		got := captured.all()
		if len(got) != 2 || got[0] != msgStart || got[1] != assistant.MsgHelp {
			t.Errorf("unexpected messages %v", got)
		}
	})

	t.Run("voice message", func(t *testing.T) {
		h, _, captured := newTestHandler(t, 0)
		msg := message(123, "")
		msg.Voice = &pkgTelegram.Voice{FileID: "f1", Duration: 3}
		h.processMessage(ctx, msg)

		if got := captured.all(); len(got) != 1 || got[0] != msgVoice {
			t.Errorf("unexpected messages %v", got)
		}
	})

	t.Run("empty text is ignored", func(t *testing.T) {
		h, _, captured := newTestHandler(t, 0)
		h.processMessage(ctx, message(123, "   "))
		if got := captured.all(); len(got) != 0 {
			t.Errorf("unexpected messages %v", got)
		}
	})
}

func TestHandleWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	send := func(h Handler, body []byte) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.POST("/webhook/telegram", h.HandleWebhook)
		req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid body", func(t *testing.T) {
		h, _, _ := newTestHandler(t, 0)
		if w := send(h, []byte(`{`)); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-message update is ignored", func(t *testing.T) {
		h, _, _ := newTestHandler(t, 0)
		w := send(h, []byte(`{"update_id": 1}`))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ignored") {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("other chat is ignored", func(t *testing.T) {
		h, _, _ := newTestHandler(t, 999)
		body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1, Message: message(123, "hello")})
		w := send(h, body)
		if !strings.Contains(w.Body.String(), "ignored") {
			t.Errorf("unexpected response %s", w.Body.String())
		}
	})

	t.Run("accepted", func(t *testing.T) {
		h, _, _ := newTestHandler(t, 123)
		body, _ := json.Marshal(pkgTelegram.Update{UpdateID: 1, Message: message(123, "hello")})
		w := send(h, body)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "accepted") {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

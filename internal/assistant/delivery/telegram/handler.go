package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	pkgLog "voice-task-assistant/pkg/log"
	pkgResponse "voice-task-assistant/pkg/response"
	pkgTelegram "voice-task-assistant/pkg/telegram"
)

type handler struct {
	l             pkgLog.Logger
	uc            assistant.UseCase
	bot           *pkgTelegram.Bot
	allowedChatID int64
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}
	if h.allowedChatID != 0 && update.Message.Chat.ID != h.allowedChatID {
		h.l.Warnf(ctx, "telegram handler: ignoring chat %d", update.Message.Chat.ID)
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	requestID := pkgLog.RequestIDFromContext(ctx)

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Voice != nil {
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgVoice)
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch text {
	case "/start":
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgStart)
	case "/help":
		return h.bot.SendMessage(ctx, msg.Chat.ID, assistant.MsgHelp)
	}

	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc = model.Scope{
			UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
			Username: msg.From.Username,
		}
	}

	reply, err := h.uc.Handle(ctx, sc, text)
	if err != nil {
		// the reply already tells the user the change was not saved
		h.l.Errorf(ctx, "telegram handler: Handle failed: %v", err)
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, reply.Text)
}

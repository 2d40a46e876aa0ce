package telegram

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	pkgLog "voice-task-assistant/pkg/log"
	pkgTelegram "voice-task-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler. allowedChatID, when non-zero,
// restricts the assistant to one chat since the task list is single-user.
func New(l pkgLog.Logger, uc assistant.UseCase, bot *pkgTelegram.Bot, allowedChatID int64) Handler {
	return &handler{
		l:             l,
		uc:            uc,
		bot:           bot,
		allowedChatID: allowedChatID,
	}
}

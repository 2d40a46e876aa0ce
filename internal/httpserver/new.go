package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/assistant"
	tgDelivery "voice-task-assistant/internal/assistant/delivery/telegram"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	taskUC      task.UseCase
	assistantUC assistant.UseCase

	// Telegram webhook, optional
	telegramHandler tgDelivery.Handler

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskUC      task.UseCase
	AssistantUC assistant.UseCase

	TelegramHandler tgDelivery.Handler

	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		taskUC:          cfg.TaskUC,
		assistantUC:     cfg.AssistantUC,
		telegramHandler: cfg.TelegramHandler,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

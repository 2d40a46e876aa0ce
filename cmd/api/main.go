package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-assistant/config"
	_ "voice-task-assistant/docs" // Swagger docs
	"voice-task-assistant/internal/app"
	tgDelivery "voice-task-assistant/internal/assistant/delivery/telegram"
	assistantUsecase "voice-task-assistant/internal/assistant/usecase"
	"voice-task-assistant/internal/httpserver"
	"voice-task-assistant/internal/reminder"
	"voice-task-assistant/internal/router"
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/telegram"
)

// @title       Voice Task Assistant API
// @description Voice-driven task list with natural-language deadlines, reminders and Telegram delivery.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Assistant API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task domain
	taskDomain, err := app.NewTaskDomain(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task domain: ", err)
		return
	}
	defer taskDomain.Close()

	// 4. Assistant
	assistantUC := assistantUsecase.New(logger, router.New(logger), taskDomain.UseCase, cfg.Assistant.Name)

	// 5. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	var notifiers []reminder.Notifier
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, telegramBot, cfg.Telegram.ChatID)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)

		if cfg.Telegram.ChatID != 0 {
			notifiers = append(notifiers, telegram.NewChatNotifier(telegramBot, cfg.Telegram.ChatID))
		}
		logger.Info(ctx, "Telegram initialized")
	} else {
		logger.Warn(ctx, "Telegram skipped: telegram.bot_token is empty")
	}

	// 6. Reminders go to Telegram when a chat is configured
	if cfg.Reminder.Enabled && len(notifiers) > 0 {
		worker := reminder.New(logger, taskDomain.UseCase, reminderConfig(cfg, taskDomain.StorePath), notifiers...)
		go worker.Run(ctx)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TaskUC:          taskDomain.UseCase,
		AssistantUC:     assistantUC,
		TelegramHandler: telegramHandler,
		RateLimitPerMin: cfg.RateLimit.PerMinute,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook uses the configured URL, or asks a local ngrok agent for one.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPI != "" {
		tunnelURL, err := telegram.NewTunnelDetector(cfg.NgrokAPI, 10, ngrokRetryInterval).Detect(ctx)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = tunnelURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}

func reminderConfig(cfg *config.Config, storePath string) reminder.Config {
	rc := reminder.Config{Interval: cfg.Reminder.Interval}
	if cfg.Reminder.Watch {
		rc.WatchPath = storePath
	}
	return rc
}

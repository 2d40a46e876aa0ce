package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voice-task-assistant/config"
	"voice-task-assistant/internal/app"
	"voice-task-assistant/internal/assistant/delivery/voice"
	assistantUsecase "voice-task-assistant/internal/assistant/usecase"
	"voice-task-assistant/internal/reminder"
	"voice-task-assistant/internal/router"
	"voice-task-assistant/internal/task/format"
	"voice-task-assistant/pkg/log"
	"voice-task-assistant/pkg/speech"
	"voice-task-assistant/pkg/telegram"
)

const ttsTimeout = 30 * time.Second

// The voice assistant reads commands line by line from stdin and answers on
// stdout, optionally also through an external text-to-speech command.
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

	// 3. Task domain
	taskDomain, err := app.NewTaskDomain(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize task domain: ", err)
		return
	}
	defer taskDomain.Close()

	// 4. Speech collaborators
	recognizer := speech.NewConsoleRecognizer(os.Stdin, os.Stdout)
	defer recognizer.Close()

	var speaker speech.Speaker = speech.NewConsoleSpeaker(os.Stdout, cfg.Assistant.Name)
	if cfg.Speech.TTSCommand != "" {
		execSpeaker, ttsErr := speech.NewExecSpeaker(cfg.Speech.TTSCommand, cfg.Speech.TTSArgs, ttsTimeout, speaker)
		if ttsErr != nil {
			logger.Warnf(ctx, "Text-to-speech unavailable, using console only: %v", ttsErr)
		} else {
			speaker = execSpeaker
		}
	}
	defer speaker.Close()

	// 5. Assistant
	assistantUC := assistantUsecase.New(logger, router.New(logger), taskDomain.UseCase, cfg.Assistant.Name)
	loop := voice.New(logger, assistantUC, recognizer, speaker)

	// 6. Reminders are spoken, and mirrored to Telegram when a chat is configured
	if cfg.Reminder.Enabled {
		notifiers := []reminder.Notifier{reminder.NotifierFunc(speaker.Speak)}
		if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
			bot := telegram.NewBot(cfg.Telegram.BotToken)
			notifiers = append(notifiers, telegram.NewChatNotifier(bot, cfg.Telegram.ChatID))
		}

		rc := reminder.Config{Interval: cfg.Reminder.Interval}
		if cfg.Reminder.Watch {
			rc.WatchPath = taskDomain.StorePath
		}
		worker := reminder.New(logger, taskDomain.UseCase, rc, notifiers...)
		go worker.Run(ctx)
	}

	// 7. Run
	loop.Say(ctx, format.Greeting(time.Now(), cfg.Assistant.Name))
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Voice loop stopped: ", err)
		return
	}
	logger.Info(ctx, "Assistant stopped")
}

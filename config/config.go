package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Assistant AssistantConfig
	Task      TaskConfig
	Reminder  ReminderConfig
	Speech    SpeechConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type AssistantConfig struct {
	Name string
}

type TaskConfig struct {
	StorageDriver string
	FilePath      string
	Format        string // json or yaml, empty picks by extension
	SQLitePath    string
	Timezone      string
	DateOrder     string // month_first or day_first
	DefaultHour   int
	DefaultMinute int
}

type ReminderConfig struct {
	Enabled  bool
	Interval time.Duration
	Watch    bool
}

type SpeechConfig struct {
	// TTSCommand is an external text-to-speech binary, e.g. espeak. Empty keeps
	// console output only.
	TTSCommand string
	TTSArgs    []string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// NgrokAPI is the local ngrok agent API used when WebhookURL is empty.
	NgrokAPI string
	ChatID   int64
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant & tasks
	cfg.Assistant.Name = viper.GetString("assistant.name")

	cfg.Task.StorageDriver = strings.ToLower(viper.GetString("task.storage_driver"))
	cfg.Task.FilePath = viper.GetString("task.file_path")
	cfg.Task.Format = viper.GetString("task.format")
	cfg.Task.SQLitePath = viper.GetString("task.sqlite_path")
	cfg.Task.Timezone = viper.GetString("task.timezone")
	cfg.Task.DateOrder = viper.GetString("task.date_order")
	cfg.Task.DefaultHour = viper.GetInt("task.default_hour")
	cfg.Task.DefaultMinute = viper.GetInt("task.default_minute")

	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.Interval = viper.GetDuration("reminder.interval")
	cfg.Reminder.Watch = viper.GetBool("reminder.watch")

	cfg.Speech.TTSCommand = viper.GetString("speech.tts_command")
	cfg.Speech.TTSArgs = viper.GetStringSlice("speech.tts_args")

	// Integrations
	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = viper.GetString("telegram.ngrok_api")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("assistant.name", "Jarvis")

	viper.SetDefault("task.storage_driver", StorageDriverFile)
	viper.SetDefault("task.file_path", "data/tasks.json")
	viper.SetDefault("task.sqlite_path", "data/tasks.db")
	viper.SetDefault("task.timezone", "Local")
	viper.SetDefault("task.date_order", "month_first")
	viper.SetDefault("task.default_hour", 9)
	viper.SetDefault("task.default_minute", 0)

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.interval", "1m")
	viper.SetDefault("reminder.watch", true)

	viper.SetDefault("rate_limit.per_minute", 60)
}

// validate rejects settings the composition root cannot recover from.
func validate(cfg *Config) error {
	switch cfg.Task.StorageDriver {
	case StorageDriverFile:
		if cfg.Task.FilePath == "" {
			return fmt.Errorf("task.file_path is required for the file driver")
		}
	case StorageDriverSQLite:
		if cfg.Task.SQLitePath == "" {
			return fmt.Errorf("task.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown task.storage_driver %q", cfg.Task.StorageDriver)
	}

	if cfg.Task.DefaultHour < 0 || cfg.Task.DefaultHour > 23 {
		return fmt.Errorf("task.default_hour must be 0-23, got %d", cfg.Task.DefaultHour)
	}
	if cfg.Task.DefaultMinute < 0 || cfg.Task.DefaultMinute > 59 {
		return fmt.Errorf("task.default_minute must be 0-59, got %d", cfg.Task.DefaultMinute)
	}
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required when google_calendar.enabled")
	}
	return nil
}

// TaskStorePath is the file the active storage driver writes to.
func (c TaskConfig) TaskStorePath() string {
	if c.StorageDriver == StorageDriverSQLite {
		return c.SQLitePath
	}
	return c.FilePath
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

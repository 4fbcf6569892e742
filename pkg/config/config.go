package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/korjavin/botan/pkg/logger"
	"github.com/korjavin/botan/pkg/messages"
	"github.com/korjavin/botan/pkg/timetable"
)

// Config holds all configuration for the application
type Config struct {
	// Telegram Bot configuration
	BotToken string

	// Timetable configuration
	ScheduleURL  string
	FetchTimeout time.Duration
	Bells        timetable.BellSchedule
	Breaks       []timetable.BreakRule

	// Chat behaviour
	Stickers []string
	Triggers []string

	LogLevel logger.Level
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Global.Warn("Error loading .env file: %v", err)
	}

	cfg := &Config{}

	// Required configurations
	cfg.BotToken = os.Getenv("BOT_TOKEN")
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is required")
	}

	cfg.ScheduleURL = os.Getenv("SCHEDULE_URL")
	if cfg.ScheduleURL == "" {
		return nil, fmt.Errorf("SCHEDULE_URL environment variable is required")
	}

	// Optional configurations with defaults
	timeout, err := time.ParseDuration(getEnvWithDefault("FETCH_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("FETCH_TIMEOUT must be positive, got %v", timeout)
	}
	cfg.FetchTimeout = timeout

	cfg.LogLevel, err = logger.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg.Stickers = splitList(os.Getenv("MOPSCI_STICKERS"))
	cfg.Triggers = splitList(getEnvWithDefault("TRIGGER_WORDS", strings.Join(messages.DefaultTriggers, ",")))

	cfg.Bells = timetable.DefaultBells
	cfg.Breaks = timetable.DefaultBreaks
	if path := os.Getenv("BELL_SCHEDULE_FILE"); path != "" {
		bells, err := LoadBellSchedule(path)
		if err != nil {
			return nil, err
		}
		cfg.Bells = bells.Slots
		cfg.Breaks = bells.Breaks
	}

	// Log configuration with sensitive data redacted
	logCfg := *cfg
	if len(logCfg.BotToken) > 8 {
		logCfg.BotToken = logCfg.BotToken[:8] + "...REDACTED..."
	} else {
		logCfg.BotToken = "...REDACTED..."
	}
	logger.Global.Info("Configuration loaded: url=%s timeout=%v stickers=%d triggers=%v slots=%d breaks=%d token=%s",
		logCfg.ScheduleURL, logCfg.FetchTimeout, len(logCfg.Stickers), logCfg.Triggers,
		len(logCfg.Bells), len(logCfg.Breaks), logCfg.BotToken)
	return cfg, nil
}

// getEnvWithDefault returns the value of the environment variable or the default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated value, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

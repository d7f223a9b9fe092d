package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	RecipientChannel   string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	QuoteTimeout  time.Duration

	ClassName     string
	Timezone      string
	DatabasePath  string
	TimetableFile string
	Port          string
	LogLevel      string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		RecipientChannel:   getEnv("RECIPIENT_CHANNEL", ""),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL:      getEnv("GEMINI_BASE_URL", ""),
		GeminiModel:        getEnv("GEMINI_MODEL", ""),
		QuoteTimeout:       getDuration("QUOTE_TIMEOUT", 15*time.Second),
		ClassName:          getEnv("CLASS_NAME", "XI RPL"),
		Timezone:           getEnv("TIMEZONE", "Asia/Jakarta"),
		DatabasePath:       getEnv("DATABASE_PATH", "./schedule.db"),
		TimetableFile:      getEnv("TIMETABLE_FILE", ""),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

// Validate reports every missing setting the bot cannot run without
func (c *Config) Validate() error {
	var errs []error
	if c.SlackBotToken == "" {
		errs = append(errs, errors.New("SLACK_BOT_TOKEN is required"))
	}
	if c.RecipientChannel == "" {
		errs = append(errs, errors.New("RECIPIENT_CHANNEL is required"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location resolves the configured time zone triggers fire in
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

// LoadTimetable reads a day-keyed JSON timetable file and validates it
func LoadTimetable(path string) (entity.Timetable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Timetable{}, fmt.Errorf("failed to read timetable file: %w", err)
	}

	var tt entity.Timetable
	if err := json.Unmarshal(data, &tt); err != nil {
		return entity.Timetable{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := tt.Validate(); err != nil {
		return entity.Timetable{}, fmt.Errorf("invalid timetable in %s: %w", path, err)
	}
	return tt, nil
}

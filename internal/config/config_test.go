package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("RECIPIENT_CHANNEL", "C123456789")
	t.Setenv("QUOTE_TIMEOUT", "3s")
	t.Setenv("CLASS_NAME", "")
	t.Setenv("TIMEZONE", "")

	cfg := Load()

	assert.Equal(t, "xoxb-test", cfg.SlackBotToken)
	assert.Equal(t, "C123456789", cfg.RecipientChannel)
	assert.Equal(t, 3*time.Second, cfg.QuoteTimeout)
	assert.Equal(t, "XI RPL", cfg.ClassName)
	assert.Equal(t, "Asia/Jakarta", cfg.Timezone)
	assert.Equal(t, "./schedule.db", cfg.DatabasePath)
	require.NoError(t, cfg.Validate())
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("QUOTE_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 15*time.Second, cfg.QuoteTimeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr []string
	}{
		{
			name:    "Should report missing token and recipient",
			cfg:     Config{Timezone: "UTC"},
			wantErr: []string{"SLACK_BOT_TOKEN is required", "RECIPIENT_CHANNEL is required"},
		},
		{
			name:    "Should report unknown time zone",
			cfg:     Config{SlackBotToken: "x", RecipientChannel: "C1", Timezone: "Mars/Olympus"},
			wantErr: []string{"invalid TIMEZONE"},
		},
		{
			name: "Should accept a complete config",
			cfg:  Config{SlackBotToken: "x", RecipientChannel: "C1", Timezone: "UTC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{LogLevel: "DEBUG"}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{LogLevel: "warning"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&Config{LogLevel: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{LogLevel: ""}).SlogLevel())
}

func TestLoadTimetable(t *testing.T) {
	tt, err := LoadTimetable(filepath.Join("..", "..", "timetable.example.json"))
	require.NoError(t, err)

	assert.Empty(t, tt.Day(time.Sunday))
	require.Len(t, tt.Day(time.Monday), 3)
	assert.Equal(t, "RPL", tt.Day(time.Monday)[0].Subject)
	assert.Equal(t, "Pak Mift", tt.Day(time.Monday)[0].Teacher)
	assert.Len(t, tt.Day(time.Saturday), 5)
	assert.False(t, tt.Day(time.Friday)[2].HasTeacher())
}

func TestLoadTimetable_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "Should fail on a missing file", path: filepath.Join(dir, "missing.json"), wantErr: "failed to read timetable file"},
		{name: "Should fail on malformed JSON", path: write("broken.json", `{"Monday": [`), wantErr: "failed to parse"},
		{name: "Should fail on an unknown day", path: write("day.json", `{"Senin": []}`), wantErr: "failed to parse"},
		{name: "Should fail on an invalid lesson", path: write("lesson.json", `{"Monday": [{"subject": "RPL", "startTime": "9:40", "endTime": "07:00"}]}`), wantErr: "invalid timetable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTimetable(tt.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

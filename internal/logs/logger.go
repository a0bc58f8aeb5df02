package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Config represents logging settings
type Config struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
	// File adds a JSON handler appending to the file
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// ParseLevel parses debug, info, warn or error; empty means info
func ParseLevel(text string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unsupported log level: %v", text)
}

// New creates a logger writing text records to writer (stderr when nil) and,
// when config.File is set, JSON records to that file. The returned closer
// releases the file.
func New(config *Config, writer io.Writer) (*slog.Logger, io.Closer, error) {
	if config == nil {
		config = &Config{}
	}
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}
	if writer == nil {
		writer = os.Stderr
	}
	options := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(writer, options)}
	var closer io.Closer = nopCloser{}
	if config.File != "" {
		file, err := os.OpenFile(config.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %v: %w", config.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(file, options))
		closer = file
	}
	return slog.New(&Handler{Handler: slogmulti.Fanout(handlers...)}), closer, nil
}

// Discard returns a logger dropping every record
func Discard() *slog.Logger {
	return slog.New(&Handler{Handler: slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

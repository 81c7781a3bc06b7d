package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// defaultLogger is the default logger instance
	defaultLogger zerolog.Logger
)

// LogLevel represents the log level
type LogLevel string

const (
	// DebugLevel is for debug messages
	DebugLevel LogLevel = "debug"
	// InfoLevel is for informational messages
	InfoLevel LogLevel = "info"
	// WarnLevel is for warning messages
	WarnLevel LogLevel = "warn"
	// ErrorLevel is for error messages
	ErrorLevel LogLevel = "error"
	// FatalLevel is for fatal messages
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	// Level is the log level
	Level LogLevel
	// Pretty enables human-readable console output instead of JSON
	Pretty bool
	// Output is the output writer (defaults to os.Stdout)
	Output io.Writer
}

// ParseLevel maps a configuration string onto a LogLevel, falling back to info.
func ParseLevel(s string) LogLevel {
	switch lvl := LogLevel(strings.ToLower(strings.TrimSpace(s))); lvl {
	case DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel:
		return lvl
	default:
		return InfoLevel
	}
}

// Configure configures the global logger and returns it.
func Configure(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(string(config.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.RFC3339,
		}
	}

	defaultLogger = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = defaultLogger
	return defaultLogger
}

// Get returns the configured global logger.
func Get() zerolog.Logger {
	return defaultLogger
}

// Ctx returns the logger attached to ctx by the request middleware,
// or the global logger when none is attached.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &defaultLogger
}

// Debug logs a debug message
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

func init() {
	Configure(Config{
		Level:  InfoLevel,
		Pretty: true,
		Output: os.Stdout,
	})
}

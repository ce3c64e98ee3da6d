package logger

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config represents logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	Environment string // development, production, test
}

// Init configures the global logger. Development gets a console writer,
// every other environment gets JSON lines with timestamp and caller.
func Init(cfg Config) {
	zerolog.TimeFieldFormat = time.RFC3339

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment == "development" || cfg.Environment == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}).With().Caller().Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger()
}

type contextKey struct{}

// FromContext returns the request-scoped logger or the global one.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && l != nil {
			return l
		}
	}
	return &log.Logger
}

// WithContext returns a context carrying the logger.
func WithContext(ctx context.Context, l *zerolog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// LogError logs an error with key/value pairs.
func LogError(ctx context.Context, err error, msg string, fields ...interface{}) {
	withFields(FromContext(ctx).Error().Err(err), fields).Msg(msg)
}

// LogInfo logs an info message with key/value pairs.
func LogInfo(ctx context.Context, msg string, fields ...interface{}) {
	withFields(FromContext(ctx).Info(), fields).Msg(msg)
}

// LogWarn logs a warning with key/value pairs.
func LogWarn(ctx context.Context, msg string, fields ...interface{}) {
	withFields(FromContext(ctx).Warn(), fields).Msg(msg)
}

// LogDebug logs a debug message with key/value pairs.
func LogDebug(ctx context.Context, msg string, fields ...interface{}) {
	withFields(FromContext(ctx).Debug(), fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	return event
}

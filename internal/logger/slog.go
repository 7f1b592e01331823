package logger

import (
	"context"
	"log/slog"
	"os"
)

// slogLogger adapts log/slog to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
	level  Level
}

// NewSlogLogger creates a Logger backed by slog, writing to cfg.Output or
// stdout when unset.
func NewSlogLogger(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     toSlogLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return &slogLogger{
		logger: slog.New(handler),
		level:  cfg.Level,
	}
}

func toSlogLevel(l Level) slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fieldsToArgs flattens fields into slog's alternating key/value form.
func fieldsToArgs(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

func (l *slogLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, fieldsToArgs(fields)...)
}

func (l *slogLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, fieldsToArgs(fields)...)
}

func (l *slogLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, fieldsToArgs(fields)...)
}

func (l *slogLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, fieldsToArgs(fields)...)
}

func (l *slogLogger) With(fields ...Field) Logger {
	return &slogLogger{
		logger: l.logger.With(fieldsToArgs(fields)...),
		level:  l.level,
	}
}

func (l *slogLogger) WithContext(ctx context.Context) Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

func (l *slogLogger) Level() Level {
	return l.level
}

package logx

import "log/slog"

// slogLogger backs the Logger interface with a *slog.Logger, so the service
// keeps structured JSON output without binding the rest of the code to slog.
type slogLogger struct {
	l *slog.Logger
}

// NewSlogAdapter wraps the given *slog.Logger in a Logger.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(msg string, fields ...Field) { s.l.Debug(msg, toSlogArgs(fields)...) }
func (s *slogLogger) Info(msg string, fields ...Field)  { s.l.Info(msg, toSlogArgs(fields)...) }
func (s *slogLogger) Warn(msg string, fields ...Field)  { s.l.Warn(msg, toSlogArgs(fields)...) }
func (s *slogLogger) Error(msg string, fields ...Field) { s.l.Error(msg, toSlogArgs(fields)...) }

// With binds fields to every subsequent entry of the returned logger.
func (s *slogLogger) With(fields ...Field) Logger {
	return &slogLogger{l: s.l.With(toSlogArgs(fields)...)}
}

// Sync is a no-op: slog handlers write through on every record.
func (s *slogLogger) Sync() error { return nil }

func toSlogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		args = append(args, slog.Any(f.Key, f.Value))
	}
	return args
}

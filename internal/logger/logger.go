// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// the convenience constructors used throughout the go-staffomatic client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Library code receives *Logger through options and falls back to [Nop]
// when none is given; secrets (tokens, passwords, client secrets) are never
// logged, only the credential scheme.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "cli")
// writing JSON to os.Stderr at Info level.
func NewLogger(role string) *Logger {
	return NewLoggerWithLevel(role, zerolog.InfoLevel, os.Stderr)
}

// NewLoggerWithLevel constructs a *Logger for role writing JSON to w.
//
// The logger is configured with:
//   - the given minimum level;
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLoggerWithLevel(role string, level zerolog.Level, w io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithField returns a child logger carrying an extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// Resty adapts l to the logger interface expected by resty, so transport
// warnings and debug output end up in the same stream.
func (l *Logger) Resty() *RestyLogger {
	return &RestyLogger{l: l}
}

// RestyLogger implements resty.Logger on top of a *Logger.
type RestyLogger struct {
	l *Logger
}

func (r *RestyLogger) Errorf(format string, v ...any) {
	r.l.Error().Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Warnf(format string, v ...any) {
	r.l.Warn().Msg(fmt.Sprintf(format, v...))
}

func (r *RestyLogger) Debugf(format string, v ...any) {
	r.l.Debug().Msg(fmt.Sprintf(format, v...))
}

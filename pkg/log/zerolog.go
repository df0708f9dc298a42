// Package log provides a zerolog-backed Logger implementation.
//
// This file contains an alternative logging backend built on rs/zerolog for
// hosts that already standardize on it. Structured error and warning types
// from pkg/errors implement zerolog.LogObjectMarshaler, so records emitted
// through this backend carry their full field sets rather than flat strings.

package log

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	golinregErrors "github.com/YuminosukeSato/golinreg/pkg/errors"
)

// ZerologLogger implements Logger on top of a zerolog.Logger.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a zerolog-backed Logger writing to w.
//
// Example:
//
//	logger := log.NewZerologLogger(os.Stderr)
//	model, err := linear.New(xs, ys, linear.WithLogger(logger))
func NewZerologLogger(w io.Writer) *ZerologLogger {
	return &ZerologLogger{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	appendFields(z.logger.Debug(), fields...).Msg(msg)
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	appendFields(z.logger.Info(), fields...).Msg(msg)
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	appendFields(z.logger.Warn(), fields...).Msg(msg)
}

// Error implements Logger.Error.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	appendFields(z.logger.Error(), fields...).Msg(msg)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{logger: z.logger.With().Fields(fields).Logger()}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(ctx context.Context, level Level) bool {
	return toZerologLevel(level) >= z.logger.GetLevel()
}

// appendFields attaches alternating key/value pairs to a zerolog event.
// Values implementing zerolog.LogObjectMarshaler keep their structure,
// plain errors go through AnErr, everything else through Interface.
func appendFields(ev *zerolog.Event, fields ...any) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		switch v := fields[i+1].(type) {
		case zerolog.LogObjectMarshaler:
			ev = ev.Object(key, v)
		case error:
			ev = ev.AnErr(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologLoggerProvider implements LoggerProvider on top of rs/zerolog.
type ZerologLoggerProvider struct {
	logger zerolog.Logger
}

// NewZerologLoggerProvider creates a provider writing zerolog JSON lines to w.
func NewZerologLoggerProvider(w io.Writer) *ZerologLoggerProvider {
	return &ZerologLoggerProvider{
		logger: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologLoggerProvider) GetLogger() Logger {
	return &ZerologLogger{logger: p.logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologLoggerProvider) GetLoggerWithName(name string) Logger {
	return &ZerologLogger{logger: p.logger.With().Str(ComponentKey, name).Logger()}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologLoggerProvider) SetLevel(level Level) {
	p.logger = p.logger.Level(toZerologLevel(level))
}

// UseZerologWarnings routes warnings raised through the errors package to zl.
// Warnings implementing zerolog.LogObjectMarshaler (such as
// MissingValueWarning) are logged with their structured fields.
func UseZerologWarnings(zl zerolog.Logger) {
	golinregErrors.SetZerologWarnFunc(func(warning error) {
		ev := zl.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.Object("warning", obj)
		} else {
			ev = ev.AnErr("warning", warning)
		}
		ev.Msg(warning.Error())
	})
}

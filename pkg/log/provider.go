// Package log provides the default logger provider used across golinreg.
//
// This file contains the slog-backed LoggerProvider implementation together with
// the package-level accessor functions (GetLogger, GetLoggerWithName, SetLogLevel)
// that model code uses to obtain loggers without depending on a concrete backend.
// The provider can be swapped at runtime via SetLoggerProvider, which is how tests
// and host applications redirect the library's log output.

package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug implements Logger.Debug.
func (s *slogLogger) Debug(msg string, fields ...any) {
	s.logger.Debug(msg, fields...)
}

// Info implements Logger.Info.
func (s *slogLogger) Info(msg string, fields ...any) {
	s.logger.Info(msg, fields...)
}

// Warn implements Logger.Warn.
func (s *slogLogger) Warn(msg string, fields ...any) {
	s.logger.Warn(msg, fields...)
}

// Error implements Logger.Error.
func (s *slogLogger) Error(msg string, fields ...any) {
	s.logger.Error(msg, fields...)
}

// With implements Logger.With.
func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: s.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (s *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return s.logger.Enabled(ctx, slog.Level(level))
}

// SlogLoggerProvider is the default LoggerProvider implementation backed by
// log/slog with JSON output. Errors carrying cockroachdb/errors stack traces
// are rendered with a dedicated stacktrace attribute via ErrFmtHandler.
type SlogLoggerProvider struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewSlogLoggerProvider creates a provider writing JSON log lines to w.
// The minimum level starts at LevelInfo and can be changed with SetLevel.
//
// Example:
//
//	provider := log.NewSlogLoggerProvider(os.Stderr)
//	log.SetLoggerProvider(provider)
func NewSlogLoggerProvider(w io.Writer) *SlogLoggerProvider {
	level := &slog.LevelVar{} // zero value is LevelInfo
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogLoggerProvider{
		level:  level,
		logger: slog.New(WrapByErrFmtHandler(handler)),
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *SlogLoggerProvider) GetLogger() Logger {
	return &slogLogger{logger: p.logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
// The name is attached as the ml.component attribute on every record.
func (p *SlogLoggerProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: p.logger.With(ComponentKey, name)}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *SlogLoggerProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu      sync.RWMutex
	defaultProvider LoggerProvider = NewSlogLoggerProvider(os.Stderr)
)

// SetLoggerProvider replaces the package-level provider.
// Passing nil restores the default slog provider writing to stderr.
func SetLoggerProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	if p == nil {
		p = NewSlogLoggerProvider(os.Stderr)
	}
	defaultProvider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLogger()
}

// GetLoggerWithName returns a named logger from the current provider.
// Model code uses this to tag records with the component that emitted them:
//
//	logger := log.GetLoggerWithName("linear.model")
//	logger.Info("Recalculation finished", log.SamplesKey, 15)
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return defaultProvider.GetLoggerWithName(name)
}

// SetLogLevel sets the minimum level on the current provider.
func SetLogLevel(level Level) {
	providerMu.RLock()
	defer providerMu.RUnlock()
	defaultProvider.SetLevel(level)
}

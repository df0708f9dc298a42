// Package log provides a structured logging interface for golinreg model operations.
//
// This package defines a minimal, slog-compatible logging interface that allows for
// flexible implementation switching while providing regression-specific structured
// logging capabilities. The interface is designed to integrate seamlessly with Go's
// standard log/slog package and popular logging libraries like zerolog, logrus, and zap.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - Regression-specific structured attributes (operation types, data sizes, coefficients)
//   - Context-aware logging with field chaining
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear.model")
//	logger.Info("Recalculation finished",
//	    log.OperationKey, log.OperationRecalculate,
//	    log.SamplesKey, 15,
//	    log.SlopeKey, 61.27,
//	)
package log

import (
	"context"
)

// Logger is the structured logging facade used throughout golinreg.
//
// Fields are alternating key/value pairs in the log/slog convention, so any
// slog-style backend can implement the interface directly. Loggers are
// immutable; With derives a child logger instead of mutating the receiver.
type Logger interface {
	// Debug logs detailed diagnostic records, such as the coefficient set
	// produced by a recalculation. Usually disabled outside development.
	//
	//	logger.Debug("Recalculation finished",
	//	    log.SlopeKey, lm.Slope(),
	//	    log.InterceptKey, lm.Intercept(),
	//	)
	Debug(msg string, fields ...any)

	// Info logs routine operational records: appends, resets, rebalanced
	// sequences. This is the level verbose models speak at.
	Info(msg string, fields ...any)

	// Warn logs conditions the model recovered from on its own, such as
	// missing values replaced during imputation.
	//
	//	logger.Warn("Imputed missing values with sequence mean",
	//	    log.SequenceKey, log.SequencePredictors,
	//	    log.ImputedKey, 2,
	//	)
	Warn(msg string, fields ...any)

	// Error logs failures that abort an operation. When the first field
	// value is an error carrying a stack trace, backends may surface the
	// trace as a dedicated attribute (see ErrFmtHandler).
	Error(msg string, fields ...any)

	// With returns a child logger that includes fields in every record it
	// emits. Use it to pin per-model context once:
	//
	//	ml := logger.With(log.ModelNameKey, "LinearModel")
	//	ml.Info("Appended targets", log.PairsKey, 6)
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted. Callers
	// can skip assembling expensive field sets when it returns false.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level. The numeric values match slog.Level,
// so conversions between the two are direct casts.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider creates and configures loggers for a backend.
// The package-level default provider can be swapped with SetLoggerProvider,
// which is how hosts and tests redirect the library's output.
type LoggerProvider interface {
	// GetLogger returns the backend's default logger.
	GetLogger() Logger

	// GetLoggerWithName returns a logger tagged with a component name,
	// conventionally the package path style "linear.model".
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum level for loggers from this provider.
	SetLevel(level Level)
}

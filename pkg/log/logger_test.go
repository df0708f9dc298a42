package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	golinregErrors "github.com/YuminosukeSato/golinreg/pkg/errors"
)

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := ToLogLevel(tt.level); got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestToLogLevel_InvalidPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for invalid log level")
		}
	}()
	ToLogLevel("verbose")
}

// TestErrFmtHandler_Stacktrace verifies that errors created through the errors
// package surface their stack trace as a dedicated attribute.
func TestErrFmtHandler_Stacktrace(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(buf, nil))
	logger := slog.New(handler)

	logger.Info("recalculation failed", ErrAttr(golinregErrors.NewDataError("Recalculate", "empty predictors")))

	output := buf.String()
	if !strings.Contains(output, `"stacktrace":"`) {
		t.Errorf("Expected stacktrace attribute in output: %s", output)
	}
	if !strings.Contains(output, "empty predictors") {
		t.Errorf("Expected error message in output: %s", output)
	}
}

// TestErrFmtHandler_NoError verifies that records without an error
// attribute are passed through without a stacktrace attribute.
func TestErrFmtHandler_NoError(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(buf, nil))
	logger := slog.New(handler)

	logger.Info("plain record", slog.String("note", "no error attached"))

	if strings.Contains(buf.String(), `"stacktrace"`) {
		t.Errorf("Did not expect stacktrace attribute: %s", buf.String())
	}
}

func TestSlogLoggerProvider(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := NewSlogLoggerProvider(buf)

	logger := provider.GetLoggerWithName("linear.model")
	logger.Info("Recalculation finished", SamplesKey, 3)

	output := buf.String()
	if !strings.Contains(output, `"ml.component":"linear.model"`) {
		t.Errorf("Expected component attribute in output: %s", output)
	}
	if !strings.Contains(output, "Recalculation finished") {
		t.Errorf("Expected message in output: %s", output)
	}

	// Raising the level filters lower-severity records, including on
	// loggers handed out before the change.
	buf.Reset()
	provider.SetLevel(LevelError)
	logger.Info("should be filtered")
	if buf.String() != "" {
		t.Errorf("Expected info record to be filtered at error level, got: %s", buf.String())
	}

	ctx := context.Background()
	if logger.Enabled(ctx, LevelInfo) {
		t.Error("Logger should not be enabled for Info after SetLevel(LevelError)")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Error")
	}
}

func TestPackageLevelProvider(t *testing.T) {
	provider, _ := NewTestLoggerProvider(LevelDebug)
	SetLoggerProvider(provider)
	defer SetLoggerProvider(nil)

	GetLoggerWithName("preprocessing.imputer").Info("Imputed missing values", ImputedKey, 2)

	testLogger, _ := provider.GetLogger().(*TestLogger)
	if testLogger == nil {
		t.Fatal("Expected TestLogger from provider")
	}
	if !testLogger.ContainsMessage("Imputed missing values") {
		t.Error("Expected message through package-level logger")
	}
	if !testLogger.ContainsField(ComponentKey, "preprocessing.imputer") {
		t.Error("Expected component field through package-level logger")
	}

	// SetLogLevel routes to the installed provider
	SetLogLevel(LevelError)
	testLogger.Clear()
	GetLogger().Info("filtered")
	if testLogger.ContainsMessage("filtered") {
		t.Error("Expected info record to be filtered after SetLogLevel(LevelError)")
	}
}

func TestZerologLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewZerologLogger(buf)

	logger.Info("Recalculation finished", SlopeKey, 10.0, PairsKey, 5)

	output := buf.String()
	if !strings.Contains(output, `"message":"Recalculation finished"`) {
		t.Errorf("Expected message in output: %s", output)
	}
	if !strings.Contains(output, `"metrics.slope":10`) {
		t.Errorf("Expected slope field in output: %s", output)
	}

	// With carries fields into subsequent records
	buf.Reset()
	child := logger.With(ModelNameKey, "LinearModel")
	child.Warn("Missing values imputed", ImputedKey, 1)
	output = buf.String()
	if !strings.Contains(output, `"model.name":"LinearModel"`) {
		t.Errorf("Expected model name from With in output: %s", output)
	}
	if !strings.Contains(output, `"level":"warn"`) {
		t.Errorf("Expected warn level in output: %s", output)
	}
}

func TestZerologLogger_ObjectFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewZerologLogger(buf)

	warning := golinregErrors.NewMissingValueWarning("predictors", 2, 1.5)
	logger.Warn("imputation applied", "warning", warning)

	output := buf.String()
	if !strings.Contains(output, `"sequence":"predictors"`) {
		t.Errorf("Expected structured warning fields in output: %s", output)
	}
	if !strings.Contains(output, `"replaced":2`) {
		t.Errorf("Expected replaced count in output: %s", output)
	}
}

func TestZerologLoggerProvider(t *testing.T) {
	buf := &bytes.Buffer{}
	provider := NewZerologLoggerProvider(buf)

	provider.GetLoggerWithName("linear.model").Info("hello")
	if !strings.Contains(buf.String(), `"ml.component":"linear.model"`) {
		t.Errorf("Expected component attribute in output: %s", buf.String())
	}

	buf.Reset()
	provider.SetLevel(LevelError)
	provider.GetLogger().Info("should be filtered")
	if buf.String() != "" {
		t.Errorf("Expected info record to be filtered at error level, got: %s", buf.String())
	}
}

func TestUseZerologWarnings(t *testing.T) {
	buf := &bytes.Buffer{}
	UseZerologWarnings(zerolog.New(buf))
	defer golinregErrors.SetZerologWarnFunc(nil)

	golinregErrors.Warn(golinregErrors.NewMissingValueWarning("targets", 1, 42.0))

	output := buf.String()
	if !strings.Contains(output, `"sequence":"targets"`) {
		t.Errorf("Expected structured warning in output: %s", output)
	}
	if !strings.Contains(output, "imputed with mean 42") {
		t.Errorf("Expected warning message in output: %s", output)
	}
}

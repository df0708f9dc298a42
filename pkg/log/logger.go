package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger configures the process-wide slog default logger the way
// golinreg services deploy it: JSON records on stdout with source locations,
// CloudLogging-compatible key names, and stack trace extraction for errors
// created through pkg/errors. Library code never calls this; it is for hosts
// that want the library's conventions applied to their own logging too.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		// CloudLoggingが期待するキー名に変換する
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr.Key = "severity"
			case slog.MessageKey:
				attr.Key = "message"
			case slog.SourceKey:
				attr.Key = "logging.googleapis.com/sourceLocation"
			}
			return attr
		},
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &ops))
	slog.SetDefault(slog.New(handler))
}

// ToLogLevel converts the configuration strings "debug", "info", "warn" and
// "error" to slog levels. Any other value panics; level strings come from
// deployment configuration, not user input.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// Attribute keys recognized by ErrFmtHandler. Records logged with an error
// under ErrAttrKey gain a StacktraceAttrKey attribute when the error carries
// a cockroachdb/errors stack trace.
const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr wraps err for slog under the conventional error key:
//
//	slog.Error("recalculation failed", log.ErrAttr(err))
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

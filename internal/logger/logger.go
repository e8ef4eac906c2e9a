package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

// Initialize sets up the global logger with the given level and format, writing to stdout.
func Initialize(level, format string) {
	InitializeWithWriter(os.Stdout, level, format)
}

// InitializeWithWriter is Initialize with an explicit destination.
func InitializeWithWriter(w io.Writer, level, format string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler).With("app", "go4rent")
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	slog.SetDefault(l)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Get returns the default logger, initializing a text logger at info level if needed.
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		Initialize("info", "text")
		mu.RLock()
		l = defaultLogger
		mu.RUnlock()
	}
	return l
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

func with(prefix []any, args []any) []any {
	return append(prefix, args...)
}

// EnterMethod logs entry into a service or repository method at debug level.
func EnterMethod(methodName string, args ...any) {
	Get().Debug("→ Method entered", with([]any{"method", methodName, "event", "enter"}, args)...)
}

// ExitMethod logs a successful return.
func ExitMethod(methodName string, args ...any) {
	Get().Debug("← Method exited", with([]any{"method", methodName, "event", "exit"}, args)...)
}

// ExitMethodWithError logs a failed return at error level.
func ExitMethodWithError(methodName string, err error, args ...any) {
	Get().Error("← Method exited with error", with([]any{"method", methodName, "event", "exit", "error", err}, args)...)
}

// DatabaseCall logs a query before it runs.
func DatabaseCall(operation, query string, args ...any) {
	Get().Debug("→ Database call", with([]any{"operation", operation, "query", query}, args)...)
}

// DatabaseResult logs the outcome of a query.
func DatabaseResult(operation string, rowsAffected int64, err error, args ...any) {
	all := with([]any{"operation", operation, "rows_affected", rowsAffected}, args)
	if err != nil {
		Get().Error("← Database call failed", append(all, "error", err)...)
		return
	}
	Get().Debug("← Database call succeeded", all...)
}

// ExternalServiceCall logs an outbound call to the gateway, mail or push provider.
func ExternalServiceCall(service, operation string, args ...any) {
	Get().Debug("→ External service call", with([]any{"service", service, "operation", operation}, args)...)
}

// ExternalServiceResult logs the outcome of an outbound call.
func ExternalServiceResult(service, operation string, err error, args ...any) {
	all := with([]any{"service", service, "operation", operation}, args)
	if err != nil {
		Get().Error("← External service call failed", append(all, "error", err)...)
		return
	}
	Get().Debug("← External service call succeeded", all...)
}

// Transition logs a committed status change of a rental, equipment or payment row.
func Transition(entity string, id int32, from, to string, args ...any) {
	Get().Info("Status transition", with([]any{"entity", entity, "id", id, "from", from, "to", to}, args)...)
}

// ExternalFailure logs a downstream failure that did not fail the triggering operation.
func ExternalFailure(service, operation string, err error, args ...any) {
	Get().Warn("External service failure ignored", with([]any{"service", service, "operation", operation, "error", err}, args)...)
}

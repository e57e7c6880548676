package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	mu  sync.RWMutex
	log = slog.Default()
)

// Init configures the process logger. Development gets human-readable text at
// debug level; everything else gets JSON at info level.
func Init(environment string) {
	var handler slog.Handler
	if environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	mu.Lock()
	log = slog.New(handler)
	mu.Unlock()
}

func Debug(msg string, args ...any) { current().Debug(msg, normalize(args)...) }
func Info(msg string, args ...any)  { current().Info(msg, normalize(args)...) }
func Warn(msg string, args ...any)  { current().Warn(msg, normalize(args)...) }
func Error(msg string, args ...any) { current().Error(msg, normalize(args)...) }

// Fatal logs at error level and exits the process.
func Fatal(msg string, args ...any) {
	current().Error(msg, normalize(args)...)
	os.Exit(1)
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// normalize tolerates call sites that pass a bare error or value instead of
// key/value pairs; anything that is not a valid pair list is folded into a
// single "detail" attribute.
func normalize(args []any) []any {
	if len(args) == 0 {
		return args
	}
	if len(args)%2 != 0 {
		return []any{"detail", fmt.Sprint(args...)}
	}
	for i := 0; i < len(args); i += 2 {
		if _, ok := args[i].(string); !ok {
			return []any{"detail", fmt.Sprint(args...)}
		}
	}
	return args
}

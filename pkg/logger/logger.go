package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

func Init() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}

// Info logs a message with optional slog key/value pairs.
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Error logs its arguments joined into a single message.
func Error(args ...any) {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	slog.Error(strings.Join(parts, " "))
}

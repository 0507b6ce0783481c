package logger

import (
	"log/slog"
	"os"
)

var log = slog.Default()

// Init configures the package logger for the given environment.
// Production logs JSON at info level; everything else logs text at
// debug level so local runs show the recommender's trace output.
func Init(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}

	var handler slog.Handler
	switch env {
	case "production":
		opts.Level = slog.LevelInfo
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	log = slog.New(handler)
}

// normalize tolerates the loose call shapes used across the codebase:
// a bare error or string detail after the message, or regular slog
// key-value pairs.
func normalize(args []any) []any {
	if len(args) != 1 {
		return args
	}

	switch v := args[0].(type) {
	case error:
		return []any{slog.Any("error", v)}
	case slog.Attr:
		return args
	default:
		return []any{slog.Any("detail", v)}
	}
}

func Debug(msg string, args ...any) {
	log.Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
}

// Fatal logs at error level and exits. Only for startup wiring.
func Fatal(msg string, args ...any) {
	log.Error(msg, normalize(args)...)
	os.Exit(1)
}

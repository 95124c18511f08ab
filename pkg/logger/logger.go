package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/yfnsimba23/Founder-Funder-Hub/config"
)

// Logger wraps slog. The zero value logs through slog.Default.
type Logger struct {
	l *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return &Logger{l: slog.New(handler)}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (lg Logger) base() *slog.Logger {
	if lg.l == nil {
		return slog.Default()
	}
	return lg.l
}

func (lg Logger) Debug(msg string, args ...any) { lg.base().Debug(msg, args...) }
func (lg Logger) Info(msg string, args ...any)  { lg.base().Info(msg, args...) }
func (lg Logger) Warn(msg string, args ...any)  { lg.base().Warn(msg, args...) }
func (lg Logger) Error(msg string, args ...any) { lg.base().Error(msg, args...) }

func (lg Logger) Infof(format string, args ...any) {
	lg.base().Info(fmt.Sprintf(format, args...))
}

func (lg Logger) Errorf(format string, args ...any) {
	lg.base().Error(fmt.Sprintf(format, args...))
}

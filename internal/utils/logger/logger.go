package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"

	"cryptofolio/internal/config"
)

// New builds the application logger for the given environment.
// local: pretty colored text at Debug, dev: JSON at Debug, prod: JSON at Info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// prettyHandler renders "LEVEL message key=value" lines with a colored level,
// for local runs only.
type prettyHandler struct {
	slog.Handler
	out *os.File
}

func newPrettyHandler(out *os.File, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		Handler: slog.NewTextHandler(out, opts),
		out:     out,
	}
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()
	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := ""
	r.Attrs(func(a slog.Attr) bool {
		fields += fmt.Sprintf(" %s=%v", a.Key, a.Value.Any())
		return true
	})

	_, err := fmt.Fprintf(h.out, "%s %s %s%s\n",
		r.Time.Format("15:04:05.000"), level, color.CyanString(r.Message), fields)
	return err
}

package bootstrap

import (
	"io"
	"log/slog"

	"appointment-finder/internal/pkg/config"
	"appointment-finder/internal/pkg/logging"

	"go.uber.org/fx"
)

// LogOutput selects where and how the process logs. The server logs to stdout,
// the CLI to stderr so that stdout carries only the JSON answer.
type LogOutput struct {
	Writer io.Writer
	Format logging.Format
}

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config, out LogOutput) *slog.Logger {
	return logging.New(cfg.Log, out.Format, out.Writer)
}

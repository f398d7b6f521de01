package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"bezgo/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, err := parseLogLevel(logCfg.Level)
	if err != nil {
		return nil, err
	}

	out, err := parseOutput(logCfg.Output)
	if err != nil {
		return nil, err
	}

	return newLogger(out, logCfg.Pretty, level).With(
		slog.String("service", params.Config.Env.ServiceName),
		slog.String("env", params.Config.Env.Env),
	), nil
}

func newLogger(out io.Writer, pretty bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if pretty {
		return slog.New(slog.NewTextHandler(out, opts))
	}

	return slog.New(slog.NewJSONHandler(out, opts))
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}

func parseOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "stdout", "":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return nil, errors.Errorf("unknown log output: %s", output)
	}
}

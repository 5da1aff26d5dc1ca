package cli

import (
	"fmt"
	"io"
	"log/slog"

	logger "github.com/Easy-Infra-Ltd/easy-logger"
)

const defaultLogLevel = "warn"

// The pretty handler only renders these four levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the stderr logger. Stdout is reserved for sanitized
// text, so logs never go there.
//
// With DEBUG_TYPE or DEBUG_LOG set the library's own environment setup is
// used, which also honours DEBUG_LOG as a file sink. Otherwise the pretty
// handler writes to env.Stderr at the requested level.
func newLogger(env *Env, level string) (*slog.Logger, error) {
	lvl, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("invalid log level %q: want debug, info, warn or error", level)
	}

	var log *slog.Logger
	if env.getenv("DEBUG_TYPE") != "" || env.getenv("DEBUG_LOG") != "" {
		log = logger.CreateLoggerFromEnv(nil, "blue")
	} else {
		log = slog.New(newHandler(env.Stderr, env.StderrIsTTY, lvl))
	}

	// Every record needs an area. Components replace it with their own.
	return log.With("process", "eunicode", "area", "cli"), nil
}

// newHandler is logger.NewHandler with colour only on terminals.
func newHandler(w io.Writer, colour bool, lvl slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: lvl}
	if colour {
		return logger.NewHandler(opts, logger.NewParams(w))
	}
	return logger.New(opts, logger.WithDestinationWriter(w), logger.WithOutputEmptyAttrs())
}

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/fractalqb/rcut/internal/config"
)

func newLogger(env config.Env, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%s_LOG_LEVEL: %w", config.Prefix, err)
	}
	if env.LogFormat == config.LogFormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.TimeOnly,
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/hanpama/graphcfg/internal/eventbus"
	"github.com/hanpama/graphcfg/internal/events"
	"github.com/hanpama/graphcfg/internal/reqid"
)

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := w
	if format == "text" {
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = !isatty.IsTerminal(f.Fd())
		}
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: noColor}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// logEvents writes the compile lifecycle of every run to logger.
func logEvents(bus *eventbus.Bus, logger zerolog.Logger) {
	eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileStart) {
		rid, _ := reqid.FromContext(ctx)
		logger.Debug().
			Int64("run", rid).
			Str("command", e.Command).
			Str("root", e.Root).
			Strs("files", e.Files).
			Msg("compile started")
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.SourcesLoaded) {
		rid, _ := reqid.FromContext(ctx)
		logger.Debug().
			Int64("run", rid).
			Strs("sources", e.Sources).
			Dur("duration", e.Duration).
			Msg("schema sources loaded")
	})

	eventbus.Subscribe(bus, func(ctx context.Context, e events.CompileFinish) {
		rid, _ := reqid.FromContext(ctx)
		if e.Err != nil {
			logger.Warn().
				Int64("run", rid).
				Str("command", e.Command).
				Int("causes", e.Causes).
				Dur("duration", e.Duration).
				Msg("compile failed")
			return
		}
		logger.Info().
			Int64("run", rid).
			Str("command", e.Command).
			Int("types", e.Types).
			Int("unions", e.Unions).
			Dur("duration", e.Duration).
			Msg("compile finished")
	})
}

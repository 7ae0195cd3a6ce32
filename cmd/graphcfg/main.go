package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/hanpama/graphcfg/internal/config"
	"github.com/hanpama/graphcfg/internal/discovery"
	"github.com/hanpama/graphcfg/internal/eventbus"
	"github.com/hanpama/graphcfg/internal/events"
	"github.com/hanpama/graphcfg/internal/lower"
	"github.com/hanpama/graphcfg/internal/otel"
	"github.com/hanpama/graphcfg/internal/render"
	"github.com/hanpama/graphcfg/internal/reqid"
	"github.com/hanpama/graphcfg/internal/valid"
)

const rootUsage = `graphcfg - lower annotated GraphQL schemas into configuration

USAGE:
  graphcfg <command> [flags]

COMMANDS:
  check            Validate the schema and report every problem found
  compile          Write the lowered configuration as JSON, YAML or SDL
  print            Print the schema rebuilt from its configuration
  help             Show help for any command
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var verr valid.ValidationError
		if errors.As(err, &verr) {
			for _, c := range verr {
				fmt.Fprintln(os.Stderr, c)
			}
			fmt.Fprintf(os.Stderr, "%d problem(s) found\n", len(verr))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, rootUsage)
		return errors.New("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "check", "compile", "print":
		return runCommand(cmd, cmdArgs, stdout, stderr)
	case "help":
		return cmdHelp(cmdArgs, stdout)
	default:
		fmt.Fprint(stderr, rootUsage)
		return errors.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, rootUsage)
		return nil
	}
	switch args[0] {
	case "check", "compile", "print":
		_, _, err := parseConfig([]string{"--help"}, stdout)
		return err
	default:
		return errors.Errorf("unknown help topic %q", args[0])
	}
}

func runCommand(cmd string, args []string, stdout, stderr io.Writer) error {
	cfg, ok, err := parseConfig(args, stdout)
	if err != nil || !ok {
		return err
	}

	logger, err := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	bus := eventbus.New()
	logEvents(bus, logger)

	ctx := context.Background()
	shutdown, err := otel.Setup(ctx, bus, cfg.OtelEndpoint, cfg.OtelService)
	if err != nil {
		return errors.Wrap(err, "otel setup")
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("otel shutdown")
		}
	}()

	out, err := compile(ctx, bus, cmd, cfg)
	if err != nil {
		return err
	}

	switch cmd {
	case "check":
		fmt.Fprintf(stdout, "schema is valid: %d types, %d unions\n", len(out.GraphQL.Types), len(out.GraphQL.Unions))
		return nil
	case "print":
		return writeOutput(stdout, "", []byte(render.SDL(out)))
	default:
		format, err := render.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		data, err := render.Encode(out, format)
		if err != nil {
			return errors.Wrap(err, "encode config")
		}
		return writeOutput(stdout, cfg.Out, data)
	}
}

// compile loads and lowers the schema of one run, publishing its lifecycle
// on bus.
func compile(ctx context.Context, bus *eventbus.Bus, cmd string, cfg Config) (*config.Config, error) {
	ctx, _ = reqid.NewContext(ctx)
	start := time.Now()
	eventbus.Publish(ctx, bus, events.CompileStart{Command: cmd, Root: cfg.Root, Files: cfg.Files})

	out, err := loadAndLower(ctx, bus, cfg)

	finish := events.CompileFinish{Command: cmd, Err: err, Duration: time.Since(start)}
	if out != nil {
		finish.Types = len(out.GraphQL.Types)
		finish.Unions = len(out.GraphQL.Unions)
	}
	var verr valid.ValidationError
	if errors.As(err, &verr) {
		finish.Causes = len(verr)
	}
	eventbus.Publish(ctx, bus, finish)
	return out, err
}

func loadAndLower(ctx context.Context, bus *eventbus.Bus, cfg Config) (*config.Config, error) {
	var disc discovery.Discovery
	if len(cfg.Files) > 0 {
		disc = discovery.NewFileListDiscovery(cfg.Files)
	} else {
		fsd, err := discovery.NewFileSystemDiscovery(ctx, cfg.Root)
		if err != nil {
			return nil, errors.Wrap(err, "discover schema sources")
		}
		disc = fsd
	}

	loadStart := time.Now()
	doc, err := discovery.Load(ctx, disc)
	if err != nil {
		return nil, errors.Wrap(err, "load schema")
	}
	metas, err := disc.ListSources(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list schema sources")
	}
	names := make([]string, len(metas))
	for i, meta := range metas {
		names[i] = meta.Name
	}
	sort.Strings(names)
	eventbus.Publish(ctx, bus, events.SourcesLoaded{Sources: names, Duration: time.Since(loadStart)})

	out, err := lower.FromDocument(doc)
	if err != nil {
		return nil, errors.Wrap(err, "lower schema")
	}
	return out, nil
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}

package main

import (
	"fmt"
	"io"

	"github.com/ardanlabs/conf"
	"github.com/go-playground/validator"
	"github.com/pkg/errors"
)

const namespace = "GRAPHCFG"

// build is set at link time.
var build = "develop"

// Config is shared by every command. Each field can be set with a flag or
// with a GRAPHCFG_ prefixed environment variable.
type Config struct {
	conf.Version
	Root         string   `conf:"default:.,help:directory searched for schema files"`
	Files        []string `conf:"help:schema files to load instead of searching the root (separated by ;)"`
	Format       string   `conf:"default:json,help:output format of compile (json yaml or sdl)" validate:"oneof=json yaml sdl"`
	Out          string   `conf:"help:output file of compile (stdout when empty)"`
	LogLevel     string   `conf:"default:info" validate:"oneof=trace debug info warn error"`
	LogFormat    string   `conf:"default:text" validate:"oneof=text json"`
	OtelEndpoint string   `conf:"help:OTLP gRPC collector address (tracing is off when empty)"`
	OtelService  string   `conf:"default:graphcfg"`
}

// parseConfig reads the flags of a command. It returns false when only help
// or version output was requested.
func parseConfig(args []string, stdout io.Writer) (Config, bool, error) {
	var cfg Config
	cfg.Version.SVN = build
	cfg.Version.Desc = "graphcfg: lower annotated GraphQL schemas into configuration"

	if err := conf.Parse(args, namespace, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(namespace, &cfg)
			if err != nil {
				return cfg, false, errors.Wrap(err, "generating config usage")
			}
			fmt.Fprintln(stdout, usage)
			return cfg, false, nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(namespace, &cfg)
			if err != nil {
				return cfg, false, errors.Wrap(err, "generating config version")
			}
			fmt.Fprintln(stdout, version)
			return cfg, false, nil
		}
		return cfg, false, errors.Wrap(err, "parsing config")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return cfg, false, errors.Wrap(err, "validating config")
	}
	return cfg, true, nil
}

// Package render writes a config.Config as JSON, YAML or SDL.
//
// All three forms are deterministic for a given Config: map keys and type
// names are emitted in lexical order.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hanpama/graphcfg/internal/config"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatSDL  Format = "sdl"
)

// ParseFormat accepts a format name in any letter case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatSDL:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Encode renders cfg in the given format.
func Encode(cfg *config.Config, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return JSON(cfg)
	case FormatYAML:
		return YAML(cfg)
	case FormatSDL:
		return []byte(SDL(cfg)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func JSON(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func YAML(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package config loads ridepath settings from defaults, an optional
// ridepath.toml, RIDEPATH_* environment variables and command-line flags.
//
// Priority: flags > env > file > defaults. Nested keys use "." in files and
// flags ("log.level") and "_" in the environment (RIDEPATH_LOG_LEVEL).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RIDEPATH_"

// DefaultFile is the configuration file looked up in the working directory.
const DefaultFile = "ridepath.toml"

// ErrInvalid indicates a value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds all settings of the CLI and the HTTP server.
type Config struct {
	// Graph is a YAML/JSON graph file; empty selects the built-in network.
	Graph  string `koanf:"graph"`
	Source string `koanf:"source"`
	Port   int    `koanf:"port"`
	JSON   bool   `koanf:"json"`
	Verify bool   `koanf:"verify"`
	// Color is "auto", "always" or "never".
	Color string `koanf:"color"`
	Log   Log    `koanf:"log"`
}

// Log configures the logger.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the lowest-priority layer.
func Default() Config {
	return Config{
		Source: "U1",
		Port:   8080,
		Color:  "auto",
		Log:    Log{Level: "info", Format: FormatConsole},
	}
}

// layer converts c to the nested map koanf merges.
func (c Config) layer() map[string]interface{} {
	return map[string]interface{}{
		"graph":  c.Graph,
		"source": c.Source,
		"port":   c.Port,
		"json":   c.JSON,
		"verify": c.Verify,
		"color":  c.Color,
		"log": map[string]interface{}{
			"level":  c.Log.Level,
			"format": c.Log.Format,
		},
	}
}

// Load reads DefaultFile when present.
func Load(f *pflag.FlagSet) (*Config, error) {
	return LoadFile(DefaultFile, f)
}

// LoadFile is Load with an explicit configuration file path. A missing file
// is skipped; a malformed one is an error.
func LoadFile(path string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(makeMapProvider(Default().layer()), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Config file (optional)
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
		}
	}

	// 3. Environment, RIDEPATH_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	// 4. Flags (only those set, or absent from lower layers)
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated and ranged fields.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: port %d", ErrInvalid, c.Port))
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format))
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("%w: color %q", ErrInvalid, c.Color))
	}

	return errors.Join(errs...)
}

// Flags registers every key on fs with its default, so Load picks them up.
func Flags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("graph", d.Graph, "graph file (.yaml, .yml, .json); empty uses the built-in Mendalo network")
	fs.StringP("source", "s", d.Source, "source node id")
	fs.IntP("port", "p", d.Port, "HTTP port")
	fs.Bool("json", d.JSON, "print the result as JSON")
	fs.Bool("verify", d.Verify, "cross-check the result against gonum")
	fs.String("color", d.Color, "auto, always or never")
	fs.String("log.level", d.Log.Level, "trace, debug, info, warn or error")
	fs.String("log.format", d.Log.Format, "console or json")
}

// mapProvider serves a plain map as a koanf layer.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider has no byte form")
}

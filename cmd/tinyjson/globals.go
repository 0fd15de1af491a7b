package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/tinyjson"
)

// globals holds the flags shared by every command.
type globals struct {
	configFile  string
	rawStrings  bool
	logLevel    string
	concurrency int
}

func addGlobalFlags(app *kingpin.Application) *globals {
	g := &globals{}
	app.Flag("config", "YAML file with codec settings.").ExistingFileVar(&g.configFile)
	app.Flag("raw-strings", "Write string bytes verbatim instead of escaping them.").BoolVar(&g.rawStrings)
	app.Flag("log.level", "Log level for diagnostics on stderr.").
		Default("warn").EnumVar(&g.logLevel, "debug", "info", "warn", "error")
	app.Flag("concurrency", "Number of files read and parsed at once.").Default("4").IntVar(&g.concurrency)
	return g
}

// codec builds the codec described by the config file and flags. Flags win
// over the file.
func (g *globals) codec() (*tinyjson.Codec, error) {
	cfg := tinyjson.DefaultConfig()
	if g.configFile != "" {
		data, err := os.ReadFile(g.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if cfg, err = loadConfig(data); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", g.configFile, err)
		}
	}
	if g.rawStrings {
		cfg.RawStrings = true
	}

	logger, err := newLogger(g.logLevel)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger

	return tinyjson.NewWithConfig(cfg)
}

// loadConfig decodes a YAML codec configuration on top of the defaults.
func loadConfig(data []byte) (*tinyjson.Config, error) {
	cfg := tinyjson.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := tinyjson.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

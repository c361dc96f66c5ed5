// Package config collects ftracker runtime settings from flags and environment.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
)

// Config holds driver and HTTP server settings.
type Config struct {
	Serve     bool
	Address   string
	Precision int
	Workers   int
	Pprof     bool
}

// Default returns settings used when nothing is configured.
func Default() Config {
	return Config{
		Address:   ":8080",
		Precision: -1,
		Workers:   runtime.NumCPU(),
	}
}

// RegisterFlags binds cfg fields to fs flags, current values become defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "run HTTP server instead of printing reports")
	fs.StringVar(&cfg.Address, "a", cfg.Address, "HTTP server address")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimal places in reports, negative prints values as is")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "max concurrent computations in batch requests")
	fs.BoolVar(&cfg.Pprof, "pprof", cfg.Pprof, "expose /debug/pprof handlers")
}

// ApplyEnv overrides cfg with FTRACKER_* environment variables.
// Environment takes priority over flags.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if val, ok := lookup("FTRACKER_ADDRESS"); ok && val != "" {
		cfg.Address = val
	}
	if val, ok := lookup("FTRACKER_PRECISION"); ok && val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("cannot parse FTRACKER_PRECISION: %w", err)
		}
		cfg.Precision = n
	}
	if val, ok := lookup("FTRACKER_WORKERS"); ok && val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("cannot parse FTRACKER_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if val, ok := lookup("FTRACKER_PPROF"); ok && val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("cannot parse FTRACKER_PPROF: %w", err)
		}
		cfg.Pprof = b
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return nil
}

// Load parses args and environment into a Config.
func Load(name string, args []string) (Config, []string, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

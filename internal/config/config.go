// Package config loads the command line options for the secretgen
// bootstrap tool.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// DefaultOutputPath is the secret file written when no -output flag is
// given, resolved against the current working directory.
const DefaultOutputPath = "secret.toml"

// Config holds the options for one secretgen invocation.
type Config struct {
	// OutputPath is where the generated secret is written.
	OutputPath string
	// ConfigPath points to a Sentra server configuration to seed or
	// check. Empty means no server config is touched.
	ConfigPath string
	// DryRun skips every write; the tool only generates and prints.
	DryRun bool
	// InitDB creates the metrics database named by the server
	// configuration. Requires ConfigPath.
	InitDB bool
	// CheckOnly validates the server configuration and exits without
	// generating anything. Requires ConfigPath.
	CheckOnly bool
}

// Load parses the options from the process arguments and environment.
func Load() (*Config, error) {
	return LoadFromFlags(os.Args[1:])
}

// LoadFromFlags parses the options from the given argument list.
// Defaults come from the environment where set.
func LoadFromFlags(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("secretgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.OutputPath, "output", getEnv("SECRETGEN_OUTPUT", DefaultOutputPath), "path of the secret file to write")
	fs.StringVar(&cfg.ConfigPath, "config", getEnv("SECRETGEN_CONFIG", ""), "Sentra server configuration to seed with the new secret")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "generate and print only, write nothing")
	fs.BoolVar(&cfg.InitDB, "init-db", false, "initialize the metrics database from the server configuration")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "validate the server configuration and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if cfg.OutputPath == "" {
		return nil, fmt.Errorf("output path must not be empty")
	}
	if cfg.InitDB && cfg.ConfigPath == "" {
		return nil, fmt.Errorf("-init-db requires -config")
	}
	if cfg.CheckOnly && cfg.ConfigPath == "" {
		return nil, fmt.Errorf("-check requires -config")
	}
	if cfg.InitDB && cfg.DryRun {
		return nil, fmt.Errorf("-init-db and -dry-run are mutually exclusive")
	}
	if cfg.CheckOnly && cfg.InitDB {
		return nil, fmt.Errorf("-check and -init-db are mutually exclusive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

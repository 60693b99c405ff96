// Package serverconfig models the Sentra server's TOML configuration
// and seeds its secret during bootstrap.
package serverconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/sentra/secretgen/internal/secret"
)

// Environment names the deployment the server runs in.
type Environment string

// Wire values are case-sensitive; anything else is a load error.
const (
	Development Environment = "dev"
	Test        Environment = "test"
	Production  Environment = "prod"
)

// ParseEnvironment converts a wire value into an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch Environment(s) {
	case Development, Test, Production:
		return Environment(s), nil
	}
	return "", fmt.Errorf("unknown environment: %s", s)
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	if err != nil {
		return err
	}
	*e = env
	return nil
}

// MarshalText implements encoding.TextMarshaler so seeded configs keep
// the wire value.
func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

// Config is the server's top-level configuration document.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Monitor  MonitorConfig  `toml:"monitor"`
}

// ServerConfig holds the HTTP listener settings and the token secret.
type ServerConfig struct {
	Host        string      `toml:"host"`
	Port        int         `toml:"port"`
	Secret      string      `toml:"secret"`
	Environment Environment `toml:"environment"`
}

// DatabaseConfig names the sqlite file the metrics land in.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MonitorConfig controls the sampling loop.
type MonitorConfig struct {
	IntervalSecs int64 `toml:"interval_secs"`
}

// Load parses the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read server config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse server config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the fields a bootstrap can verify without running the
// server. An empty secret is allowed: seeding fills it in.
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return fmt.Errorf("server.host must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Server.Secret != "" && !secret.IsCanonical(c.Server.Secret) {
		return fmt.Errorf("server.secret is not a canonical UUID4 value")
	}
	// A missing environment key decodes to the zero value without ever
	// reaching UnmarshalText, so it has to be rejected here.
	if _, err := ParseEnvironment(string(c.Server.Environment)); err != nil {
		return fmt.Errorf("server.environment: %w", err)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Monitor.IntervalSecs <= 0 {
		return fmt.Errorf("monitor.interval_secs must be positive, got %d", c.Monitor.IntervalSecs)
	}
	return nil
}

// Seed loads the configuration at path, replaces the server secret
// with salt and writes the file back in place. The rewritten config is
// returned so callers can act on its other sections.
func Seed(path, salt string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.Server.Secret = salt
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config %s: %w", path, err)
	}
	if err := writeConfig(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// writeConfig rewrites the config atomically, preserving the previous
// file mode when one exists.
func writeConfig(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal server config: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".serverconfig-*")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write server config: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod server config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close server config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename server config: %w", err)
	}
	return nil
}

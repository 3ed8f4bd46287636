// Package config handles tcap.yaml and tcap.toml configuration files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/hnimtadd/tcap/logger"
	"github.com/hnimtadd/tcap/terminfo/database"
)

// Names lists the file names Find looks for, in order.
var Names = []string{"tcap.yaml", "tcap.yml", "tcap.toml"}

// ErrUnknownFormat reports a configuration file with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown configuration format")

// Config is the command configuration.
type Config struct {
	// DefaultTerm is used when neither -T nor $TERM names a terminal.
	DefaultTerm string `yaml:"default_term" toml:"default_term"`
	// SearchPaths are searched before the standard terminfo directories.
	SearchPaths []string `yaml:"search_paths" toml:"search_paths"`
	// Encoding is the IANA name of the terminal's character set. Text
	// arguments are transcoded to it before rendering.
	Encoding string `yaml:"encoding" toml:"encoding"`
	Log      Log    `yaml:"log" toml:"log"`

	// Path is the file the configuration was read from (set at load time).
	Path string `yaml:"-" toml:"-"`
}

// Log configures the command's logger.
type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		DefaultTerm: database.DefaultTerm,
		Log:         Log{Level: "info", Format: "text"},
	}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses configuration content, choosing YAML or TOML by the
// extension of path.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	cfg.Path = path
	return &cfg, nil
}

func (c *Config) validate(path string) error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: log.level: %w", path, err)
	}
	if _, err := logger.ParseType(c.Log.Format); err != nil {
		return fmt.Errorf("%s: log.format: %w", path, err)
	}
	for i, dir := range c.SearchPaths {
		if dir == "" {
			return fmt.Errorf("%s: search_paths[%d] is empty", path, i)
		}
	}
	return nil
}

func (c *Config) setDefaults() {
	d := Default()
	if c.DefaultTerm == "" {
		c.DefaultTerm = d.DefaultTerm
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
}

// Find searches for a configuration file starting from dir and walking up
// to the root. It returns "" and a nil error when none exists.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}
	for {
		for _, name := range Names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// TermName picks the terminal: $TERM when set, otherwise DefaultTerm.
func (c *Config) TermName() string {
	if name := os.Getenv("TERM"); name != "" {
		return name
	}
	if c.DefaultTerm != "" {
		return c.DefaultTerm
	}
	return database.DefaultTerm
}

// Dirs returns SearchPaths followed by the standard terminfo directories.
func (c *Config) Dirs() []string {
	dirs := append([]string(nil), c.SearchPaths...)
	return append(dirs, database.SearchPaths()...)
}

// Logger builds the logger described by c.Log, writing to w.
func (c *Config) Logger(w io.Writer) (logger.Logger, error) {
	level, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	typ, err := logger.ParseType(c.Log.Format)
	if err != nil {
		return nil, err
	}
	return logger.New(logger.Options{Buffer: w, Level: level, Type: typ}), nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when a config value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// ProjectConfig is the content of vfile.yaml.
type ProjectConfig struct {
	Base          string   `yaml:"base,omitempty"`
	Read          string   `yaml:"read,omitempty"`
	HighWaterMark int      `yaml:"high_water_mark,omitempty"`
	IncludeDirs   bool     `yaml:"include_dirs,omitempty"`
	Ignore        []string `yaml:"ignore,omitempty"`
	LogFile       string   `yaml:"log_file,omitempty"`
}

const ConfigFileName = "vfile.yaml"

// Environment variables that override file values.
const (
	EnvBase          = "VFILE_BASE"
	EnvRead          = "VFILE_READ"
	EnvHighWaterMark = "VFILE_HIGH_WATER_MARK"
	EnvIncludeDirs   = "VFILE_INCLUDE_DIRS"
	EnvIgnore        = "VFILE_IGNORE"
	EnvLogFile       = "VFILE_LOG_FILE"
)

// Default returns the configuration used when no vfile.yaml exists.
func Default() *ProjectConfig {
	return &ProjectConfig{Read: "buffer"}
}

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads vfile.yaml from sourcePath, falling back to Default
// when the file is absent.
func LoadOrDefault(sourcePath string) (*ProjectConfig, error) {
	cfg, err := Load(sourcePath)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// ApplyEnv overrides fields from VFILE_* variables found through lookup,
// usually os.LookupEnv. VFILE_IGNORE is a comma-separated list that replaces
// the configured one.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBase); ok {
		c.Base = v
	}
	if v, ok := lookup(EnvRead); ok {
		c.Read = v
	}
	if v, ok := lookup(EnvHighWaterMark); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvHighWaterMark, v)
		}
		c.HighWaterMark = n
	}
	if v, ok := lookup(EnvIncludeDirs); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvIncludeDirs, v)
		}
		c.IncludeDirs = b
	}
	if v, ok := lookup(EnvIgnore); ok {
		c.Ignore = nil
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				c.Ignore = append(c.Ignore, p)
			}
		}
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = v
	}
	return nil
}

// Validate reports out-of-range values.
func (c *ProjectConfig) Validate() error {
	switch c.Read {
	case "", "buffer", "stream", "none":
	default:
		return fmt.Errorf("%w: read must be buffer, stream or none, got %q", ErrInvalidConfig, c.Read)
	}
	if c.HighWaterMark < 0 {
		return fmt.Errorf("%w: high_water_mark must not be negative, got %d", ErrInvalidConfig, c.HighWaterMark)
	}
	return nil
}

// Package config loads, normalizes, and validates ixmatch configuration.
//
// It supplies repository defaults, reads the optional TOML file, and trims
// every field into canonical form so the CLI can layer explicit flags on
// top. Settings resolved here are defaults only; flags always win.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Channels carries discovery settings for the two capture channels.
type Channels struct {
	RGBPattern    string `toml:"rgb_pattern"`
	NIRPattern    string `toml:"nir_pattern"`
	Extension     string `toml:"extension"`
	CaseSensitive bool   `toml:"case_sensitive"`
}

// Matching carries pairing settings.
type Matching struct {
	ThresholdMillis int  `toml:"threshold_ms"`
	KeepEmpty       bool `toml:"keep_empty"`
}

// Logging carries log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full ixmatch configuration.
type Config struct {
	Channels Channels `toml:"channels"`
	Matching Matching `toml:"matching"`
	Logging  Logging  `toml:"logging"`
}

// Threshold returns the matching threshold as a duration.
func (c *Config) Threshold() time.Duration {
	return time.Duration(c.Matching.ThresholdMillis) * time.Millisecond
}

// DefaultConfigPath returns the user-level configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/ixmatch/config.toml")
}

// Load locates and parses a configuration file, falling back to defaults
// when none exists. It returns the effective config, the resolved path, and
// whether a file was actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("ixmatch.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Channels.RGBPattern = strings.TrimSpace(c.Channels.RGBPattern)
	c.Channels.NIRPattern = strings.TrimSpace(c.Channels.NIRPattern)
	c.Channels.Extension = strings.TrimPrefix(strings.TrimSpace(c.Channels.Extension), ".")
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Channels.RGBPattern == "" {
		return errors.New("channels.rgb_pattern must be set")
	}
	if c.Channels.NIRPattern == "" {
		return errors.New("channels.nir_pattern must be set")
	}
	if c.Channels.Extension == "" {
		return errors.New("channels.extension must be set")
	}
	if c.Matching.ThresholdMillis <= 0 {
		return errors.New("matching.threshold_ms must be positive")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

// CreateSample writes the sample configuration file to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath resolves tilde shortcuts and relative segments in path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

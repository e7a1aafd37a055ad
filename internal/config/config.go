// Package config loads the optional TOML configuration file supplying
// default parse options and logging settings for the CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"subtext/internal/subtitle"
)

// Parse contains default options applied to every load.
type Parse struct {
	FrameRate          float64 `toml:"framerate"`
	KeepHTML           bool    `toml:"keep_html"`
	KeepASS            bool    `toml:"keep_ass"`
	MergeToleranceMS   int     `toml:"merge_tolerance_ms"`
	OverlapToleranceMS int     `toml:"overlap_tolerance_ms"`
}

// Logging contains log output settings.
type Logging struct {
	File    string `toml:"file"`
	Verbose bool   `toml:"verbose"`
}

// Config encapsulates all configuration values.
type Config struct {
	Parse   Parse   `toml:"parse"`
	Logging Logging `toml:"logging"`
}

// Default returns a Config populated with repository defaults: framerate 0
// (each frame-based format keeps its conventional rate), markup stripping
// on, and library-default tolerances.
func Default() Config {
	return Config{}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	return expandPath("~/.config/subtext/config.toml")
}

// Load reads the configuration at path, or the default location when path
// is empty. A missing file at the default location yields the defaults; a
// missing file named explicitly is an error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	} else {
		expanded, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return &cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

// Validate rejects values no parser can work with.
func (c *Config) Validate() error {
	if c.Parse.FrameRate < 0 {
		return fmt.Errorf("parse.framerate must not be negative, got %v", c.Parse.FrameRate)
	}
	if c.Parse.MergeToleranceMS < 0 {
		return fmt.Errorf("parse.merge_tolerance_ms must not be negative, got %d", c.Parse.MergeToleranceMS)
	}
	if c.Parse.OverlapToleranceMS < 0 {
		return fmt.Errorf("parse.overlap_tolerance_ms must not be negative, got %d", c.Parse.OverlapToleranceMS)
	}
	return nil
}

// Options converts the parse section into library parse options. Zero
// tolerances keep the library defaults.
func (c *Config) Options() subtitle.Options {
	opts := subtitle.DefaultOptions()
	opts.FrameRate = c.Parse.FrameRate
	opts.KeepHTML = c.Parse.KeepHTML
	opts.KeepASS = c.Parse.KeepASS
	if c.Parse.MergeToleranceMS > 0 {
		opts.MergeTolerance = time.Duration(c.Parse.MergeToleranceMS) * time.Millisecond
	}
	if c.Parse.OverlapToleranceMS > 0 {
		opts.OverlapTolerance = time.Duration(c.Parse.OverlapToleranceMS) * time.Millisecond
	}
	return opts
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
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

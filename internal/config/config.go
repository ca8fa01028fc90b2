// Package config loads spotlight's settings from a TOML file, an optional
// .env file and the environment, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/spotlight/styledtext"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment variables that override the file.
const (
	EnvMuted      = "SPOTLIGHT_MUTED"
	EnvDesaturate = "SPOTLIGHT_DESATURATE"
	EnvTabWidth   = "SPOTLIGHT_TAB_WIDTH"
	EnvNoColor    = "NO_COLOR"
)

type Config struct {
	ShowLineNumbers bool  `toml:"show_line_numbers"`
	TabWidth        int   `toml:"tab_width"`
	Theme           Theme `toml:"theme"`

	// NoColor is set from the environment only.
	NoColor bool `toml:"-"`
}

type Theme struct {
	Foreground string  `toml:"foreground"`
	Background string  `toml:"background"`
	Muted      string  `toml:"muted"`
	Desaturate float64 `toml:"desaturate"`
}

func Default() Config {
	th := styledtext.DefaultTheme()
	return Config{
		ShowLineNumbers: true,
		TabWidth:        th.TabWidth,
		Theme: Theme{
			Muted:      string(th.Muted),
			Desaturate: th.Desaturate,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/spotlight/config.toml, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "spotlight", "config.toml")
}

// Load reads envFile (if it exists) into the process environment, then the
// TOML file at path (if it exists), then applies environment overrides.
// Empty paths are skipped.
func Load(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads the TOML file at path over the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data over the defaults. Unknown keys are rejected. source
// names the data in errors.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, newParseError(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// ApplyEnv applies the SPOTLIGHT_* and NO_COLOR overrides found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMuted); ok && v != "" {
		c.Theme.Muted = v
	}
	if v, ok := lookup(EnvDesaturate); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvDesaturate, v, ErrInvalid)
		}
		c.Theme.Desaturate = f
	}
	if v, ok := lookup(EnvTabWidth); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvTabWidth, v, ErrInvalid)
		}
		c.TabWidth = n
	}
	// Any non-empty value counts, per no-color.org.
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		c.NoColor = true
	}
	return c.Validate()
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width %d outside [1, 16]: %w", c.TabWidth, ErrInvalid)
	}
	if c.Theme.Desaturate < 0 || c.Theme.Desaturate > 1 {
		return fmt.Errorf("theme.desaturate %v outside [0, 1]: %w", c.Theme.Desaturate, ErrInvalid)
	}
	for name, v := range map[string]string{
		"theme.foreground": c.Theme.Foreground,
		"theme.background": c.Theme.Background,
		"theme.muted":      c.Theme.Muted,
	} {
		if !validColor(v) {
			return fmt.Errorf("%s %q is neither a hex color nor a palette index: %w", name, v, ErrInvalid)
		}
	}
	return nil
}

func validColor(v string) bool {
	if v == "" || hexColor.MatchString(v) {
		return true
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 255
}

// StyledTheme converts the config to a render theme.
func (c Config) StyledTheme() styledtext.Theme {
	return styledtext.Theme{
		Foreground: lipgloss.Color(c.Theme.Foreground),
		Background: lipgloss.Color(c.Theme.Background),
		Muted:      lipgloss.Color(c.Theme.Muted),
		Desaturate: c.Theme.Desaturate,
		TabWidth:   c.TabWidth,
	}
}

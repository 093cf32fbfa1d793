package config

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "gopkg.in/yaml.v3"

    "scroll-overflow/internal/tui/geom"
    "scroll-overflow/internal/tui/state"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the pager and probe settings. Files are JSON unless the path
// ends in .yaml or .yml. Command-line flags override file values.
type Config struct {
    // Tolerance is a length ("2", "3c", "10%"); empty disables it.
    Tolerance string `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`

    // Width and Height size the headless probe viewport.
    Width  int `json:"width,omitempty" yaml:"width,omitempty"`
    Height int `json:"height,omitempty" yaml:"height,omitempty"`

    NoColor bool `json:"noColor,omitempty" yaml:"noColor,omitempty"`
    ASCII   bool `json:"ascii,omitempty" yaml:"ascii,omitempty"`

    // Glyphs override the hint marks by direction name or "more".
    Glyphs map[string]string `json:"glyphs,omitempty" yaml:"glyphs,omitempty"`
    // Colors override palette roles ("primary", "muted", ...).
    Colors map[string]string `json:"colors,omitempty" yaml:"colors,omitempty"`

    LogFile string `json:"logFile,omitempty" yaml:"logFile,omitempty"`
    Verbose bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
    return &Config{Width: 80, Height: 24}
}

// DefaultPath is where LoadOptional looks when no path is given.
func DefaultPath() string {
    dir, err := os.UserConfigDir()
    if err != nil {
        return ""
    }
    return filepath.Join(dir, "scroll-overflow", "config.yaml")
}

// Load reads path over the defaults. A missing file is an error.
func Load(path string) (*Config, error) {
    path = ExpandPath(path)
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    c := Default()
    if isYAML(path) {
        if err := yaml.Unmarshal(data, c); err != nil {
            return nil, fmt.Errorf("parse config YAML: %w", err)
        }
    } else {
        if err := json.Unmarshal(data, c); err != nil {
            return nil, fmt.Errorf("parse config JSON: %w", err)
        }
    }
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
    if path == "" {
        return Default(), nil
    }
    c, err := Load(path)
    if errors.Is(err, os.ErrNotExist) {
        return Default(), nil
    }
    return c, err
}

func Save(path string, c *Config) error {
    path = ExpandPath(path)
    var (
        data []byte
        err  error
    )
    if isYAML(path) {
        data, err = yaml.Marshal(c)
    } else {
        data, err = json.MarshalIndent(c, "", "  ")
    }
    if err != nil {
        return fmt.Errorf("encode config: %w", err)
    }
    if dir := filepath.Dir(path); dir != "." && dir != "" {
        if err := os.MkdirAll(dir, 0o755); err != nil {
            return fmt.Errorf("create config directory: %w", err)
        }
    }
    return os.WriteFile(path, data, 0644)
}

// Validate checks values that would otherwise fail late, inside the pager.
func (c *Config) Validate() error {
    if c.Width < 0 || c.Height < 0 {
        return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
    }
    if _, err := c.ToleranceLength(); err != nil {
        return fmt.Errorf("%w: %w", ErrInvalid, err)
    }
    for k := range c.Glyphs {
        if strings.EqualFold(k, "more") {
            continue
        }
        if _, ok := state.ParseDirection(strings.ToLower(k)); !ok {
            return fmt.Errorf("%w: unknown glyph %q", ErrInvalid, k)
        }
    }
    return nil
}

// ToleranceLength parses Tolerance.
func (c *Config) ToleranceLength() (geom.Length, error) {
    l, err := geom.ParseLength(c.Tolerance)
    if err != nil {
        return geom.Length{}, fmt.Errorf("tolerance: %w", err)
    }
    return l, nil
}

// ExpandPath resolves a leading ~/ and environment variables, and makes the
// result absolute.
func ExpandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return p
    }
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    p = os.ExpandEnv(p)
    if !filepath.IsAbs(p) {
        if abs, err := filepath.Abs(p); err == nil {
            p = abs
        }
    }
    return p
}

func isYAML(path string) bool {
    switch strings.ToLower(filepath.Ext(path)) {
    case ".yaml", ".yml":
        return true
    }
    return false
}

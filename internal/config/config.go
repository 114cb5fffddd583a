package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultLimit is the number of records requested per fetch
const DefaultLimit = 100

// Config represents the application configuration
type Config struct {
	APIURL   string       `toml:"api_url"`
	Limit    int          `toml:"limit"`
	Timeout  string       `toml:"timeout"`
	TokenKey string       `toml:"token_key"`
	TimeZone string       `toml:"time_zone"`
	LogLevel string       `toml:"log_level"`
	Export   ExportConfig `toml:"export"`
	Theme    Theme        `toml:"theme_colors"`
	Keys     KeyMap       `toml:"keys"`

	path string
}

// ExportConfig controls where and how exports are written
type ExportConfig struct {
	Dir  string `toml:"dir"`
	XLSX bool   `toml:"xlsx"`
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Landmark      string `toml:"landmark"`
	Marker        string `toml:"marker"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
	BorderColor   string `toml:"border_color"`
}

// KeyMap defines key bindings
type KeyMap struct {
	Refresh []string `toml:"refresh"`
	Export  []string `toml:"export"`
	Detail  []string `toml:"detail"`
	Help    []string `toml:"help"`
	Quit    []string `toml:"quit"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		APIURL:   "http://localhost:5001",
		Limit:    DefaultLimit,
		Timeout:  "15s",
		TokenKey: "token",
		TimeZone: "",
		LogLevel: "info",
		Export: ExportConfig{
			Dir:  "",
			XLSX: true,
		},
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Landmark:      "#EBCB8B",
			Marker:        "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
			BorderColor:   "#4C566A",
		},
		Keys: KeyMap{
			Refresh: []string{"r", "ctrl+r"},
			Export:  []string{"e", "x"},
			Detail:  []string{"enter", "space"},
			Help:    []string{"?"},
			Quit:    []string{"q", "esc", "ctrl+c"},
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("registros/config.toml")
}

// Load loads the config from the XDG location or creates the default one
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve config path")
	}
	return LoadFile(path)
}

// LoadFile loads the config from path, writing defaults on first run
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// First run: create default
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Decode over the defaults so sections absent from older files keep sane values
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode config", goerr.V("path", path))
	}
	cfg.path = path

	// Populate defaults for missing fields (migration)
	defaults := DefaultConfig()
	updated := false

	if !md.IsDefined("theme_colors") {
		updated = true
	}
	if !md.IsDefined("keys") {
		updated = true
	}
	if !md.IsDefined("export", "xlsx") {
		updated = true
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaults.Limit
		updated = true
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaults.APIURL
		updated = true
	}
	if cfg.TokenKey == "" {
		cfg.TokenKey = defaults.TokenKey
		updated = true
	}

	if updated {
		// Proceed with in-memory defaults even if save fails
		_ = cfg.Save()
	}

	return cfg, nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return goerr.Wrap(err, "failed to resolve config path")
		}
		path = p
		c.path = p
	}

	// Ensure directory exists with secure permissions
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return goerr.Wrap(err, "failed to create config dir", goerr.V("dir", dir))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return goerr.Wrap(err, "failed to open config", goerr.V("path", path))
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return goerr.Wrap(err, "failed to encode config", goerr.V("path", path))
	}
	return nil
}

// RequestTimeout parses Timeout, falling back to 15s
func (c *Config) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// Location resolves TimeZone; empty means the local zone
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, goerr.Wrap(err, "unknown time zone", goerr.V("time_zone", c.TimeZone))
	}
	return loc, nil
}

// ExportDir returns the configured export directory, else the XDG download
// directory, else the working directory
func (c *Config) ExportDir() string {
	if c.Export.Dir != "" {
		return c.Export.Dir
	}
	if xdg.UserDirs.Download != "" {
		if st, err := os.Stat(xdg.UserDirs.Download); err == nil && st.IsDir() {
			return xdg.UserDirs.Download
		}
	}
	return "."
}

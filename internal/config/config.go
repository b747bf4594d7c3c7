package config

import (
	"fmt"

	"github.com/yildizm/NanoLab/internal/formatter"
	"github.com/yildizm/NanoLab/internal/nav"
)

// Config holds the complete application configuration
type Config struct {
	Version string       `yaml:"version" json:"version"`
	UI      UIConfig     `yaml:"ui" json:"ui"`
	Output  OutputConfig `yaml:"output" json:"output"`
	Data    DataConfig   `yaml:"data" json:"data"`
}

// UIConfig configures the control panel
type UIConfig struct {
	Theme       string `yaml:"theme" json:"theme"`               // light|dark
	StartPage   string `yaml:"start_page" json:"start_page"`     // page shown at launch
	AltScreen   bool   `yaml:"alt_screen" json:"alt_screen"`     // use the alternate screen buffer
	WatchConfig bool   `yaml:"watch_config" json:"watch_config"` // re-apply theme when the config file changes
}

// OutputConfig configures how saved settings are reported
type OutputConfig struct {
	Format    string `yaml:"format" json:"format"`         // text|json|yaml|csv|markdown
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Verbose   bool   `yaml:"verbose" json:"verbose"`
	NoEmoji   bool   `yaml:"no_emoji" json:"no_emoji"`
}

// DataConfig configures the placeholder experiment on the data page
type DataConfig struct {
	Samples  int   `yaml:"samples" json:"samples"`
	MaxValue int   `yaml:"max_value" json:"max_value"`
	Seed     int64 `yaml:"seed" json:"seed"` // 0 picks a time-based seed
}

// Themes lists the accepted theme names
var Themes = []string{"light", "dark"}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:       "light",
			StartPage:   string(nav.PageWelcome),
			AltScreen:   true,
			WatchConfig: false,
		},
		Output: OutputConfig{
			Format:    "text",
			ColorMode: "auto",
		},
		Data: DataConfig{
			Samples:  50,
			MaxValue: 20,
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return c.validateDataConfig()
}

func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" && !contains(Themes, c.UI.Theme) {
		return fmt.Errorf("invalid theme: %s (must be one of: light, dark)", c.UI.Theme)
	}
	if c.UI.StartPage != "" && !nav.IsKnown(nav.PageID(c.UI.StartPage)) {
		return fmt.Errorf("invalid start page: %s", c.UI.StartPage)
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.Format != "" && !formatter.IsValid(c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml, csv, markdown)", c.Output.Format)
	}
	if c.Output.ColorMode != "" && !contains([]string{"auto", "always", "never"}, c.Output.ColorMode) {
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
	}
	return nil
}

func (c *Config) validateDataConfig() error {
	if c.Data.Samples < 1 {
		return fmt.Errorf("samples must be greater than 0")
	}
	if c.Data.MaxValue < 1 {
		return fmt.Errorf("max_value must be greater than 0")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

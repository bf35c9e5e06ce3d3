// Package config loads hospital-desk.jsonc.
//
// The file is JSON with comments; trailing commas are a syntax error. Every key has a
// default, and every key can be overridden from the environment with the
// HOSPITAL_ prefix, dots replaced by underscores (HOSPITAL_LOG_LEVEL,
// HOSPITAL_LAYOUT_TAB_HEADER_HEIGHT).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
	"github.com/spf13/viper"

	"hospital-desk/dialogkit"
	"hospital-desk/internal/constants"
	"hospital-desk/internal/debuglog"
	"hospital-desk/internal/platform"
)

const envPrefix = "HOSPITAL"

// Config is the application configuration.
type Config struct {
	// DataFile is the hospital database. Relative paths are resolved against
	// the executable directory.
	DataFile       string            `mapstructure:"data_file"`
	LogLevel       string            `mapstructure:"log_level"`
	Theme          string            `mapstructure:"theme"`
	SingleInstance bool              `mapstructure:"single_instance"`
	Layout         dialogkit.Metrics `mapstructure:"layout"`
}

// Default returns the configuration used when no file exists.
func Default(execDir string) Config {
	return Config{
		DataFile:       platform.GetDataPath(execDir),
		LogLevel:       debuglog.LevelInfo.String(),
		Theme:          constants.AppTheme,
		SingleInstance: true,
		Layout:         dialogkit.DefaultMetrics(),
	}
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path, execDir string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default(execDir))

	v.SetConfigType("json")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(jsonc.ToJSON(data))); err != nil {
			return Config{}, fmt.Errorf("Load: cannot parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		debuglog.InfoLog("config.Load: %s not found, using defaults", path)
	default:
		return Config{}, fmt.Errorf("Load: cannot read %s: %w", path, err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("Load: unmarshal config: %w", err)
	}
	c.normalize(execDir)
	return c, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("data_file", d.DataFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("single_instance", d.SingleInstance)

	m := d.Layout
	sizes := map[string]dialogkit.Size{
		"layout.button_size":      m.ButtonSize,
		"layout.base_dialog_size": m.BaseDialogSize,
		"layout.tab_extra":        m.TabExtra,
		"layout.tree_extra":       m.TreeExtra,
	}
	for key, s := range sizes {
		v.SetDefault(key+".width", s.Width)
		v.SetDefault(key+".height", s.Height)
	}
	v.SetDefault("layout.tab_header_height", m.TabHeaderHeight)
	v.SetDefault("layout.tree_panel_width", m.TreePanelWidth)
	v.SetDefault("layout.divider_width", m.DividerWidth)
}

func (c *Config) normalize(execDir string) {
	if strings.TrimSpace(c.DataFile) == "" {
		c.DataFile = platform.GetDataPath(execDir)
	} else if !filepath.IsAbs(c.DataFile) {
		c.DataFile = filepath.Join(execDir, c.DataFile)
	}
	switch strings.ToLower(c.Theme) {
	case "dark", "light", "default":
		c.Theme = strings.ToLower(c.Theme)
	default:
		debuglog.WarnLog("config: unknown theme %q, using default", c.Theme)
		c.Theme = "default"
	}
	c.LogLevel = debuglog.ParseLevel(c.LogLevel).String()
}

// Template is written next to the executable the first time the
// application runs.
const Template = `{
  // Hospital database file. Relative paths start at the executable directory.
  "data_file": "data/hospital.json",
  // off | error | warn | info | verbose | trace
  "log_level": "info",
  // dark | light | default
  "theme": "default",
  // Warn when another copy of the application is already running.
  "single_instance": true,
  "layout": {
    "button_size": { "width": 80, "height": 26 },
    "base_dialog_size": { "width": 300, "height": 106 },
    "tab_extra": { "width": 50, "height": 150 },
    "tree_extra": { "width": 100, "height": 200 },
    "tab_header_height": 52,
    "tree_panel_width": 150,
    "divider_width": 7
  }
}
`

// WriteTemplate writes Template to path unless a file is already there.
func WriteTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(Template), 0644); err != nil {
		return fmt.Errorf("WriteTemplate: %w", err)
	}
	return nil
}

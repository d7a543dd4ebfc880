// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/okvee/placard/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"` // Embed logger config under [logger] table
	Canvas CanvasConfig  `toml:"canvas"` // Canvas geometry and history settings
	Style  StyleConfig   `toml:"style"`  // Style profile applied at startup
	Editor EditorConfig  `toml:"editor"` // Editor-specific settings
}

// CanvasConfig holds canvas geometry and history settings.
type CanvasConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	HistoryDepth int     `toml:"history_depth"` // 0 keeps every snapshot
}

// StyleConfig holds the initial style profile for new labels.
type StyleConfig struct {
	FontSize float64 `toml:"font_size"`
	Color    string  `toml:"color"` // Hex, e.g. "#1a2b3c"
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	ExportPath      string `toml:"export_path"` // Target for PNG export
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "", // Empty means default path logic in main applies
			// Filter lists default to empty/nil
		},
		Canvas: CanvasConfig{
			Width:        DefaultCanvasWidth,
			Height:       DefaultCanvasHeight,
			HistoryDepth: DefaultHistoryDepth,
		},
		Style: StyleConfig{
			FontSize: DefaultFontSize,
			Color:    DefaultTextColor,
		},
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
			ExportPath:      DefaultExportFileName,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file.
// It returns the loaded config and an error (nil if file not found or loaded successfully).
func loadFromFile(filePath string, verbose bool) (*Config, error) {
	cfg := &Config{} // Start empty, we'll merge later
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return cfg, nil // File not found is not an error here
	}
	if err != nil {
		// Other error stating the file
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	if verbose {
		logger.Debugf("Attempting to load configuration from: %s", filePath)
	}
	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return cfg, nil
}

// merge applies the values a config file actually set onto cfg. Zero
// values mean "not set" for most fields, so they are skipped; booleans
// cannot be distinguished and are copied as-is.
func (c *Config) merge(fileCfg *Config) {
	if fileCfg.Logger.LogLevel != "" {
		c.Logger.LogLevel = fileCfg.Logger.LogLevel
	}
	if fileCfg.Logger.LogFilePath != "" {
		c.Logger.LogFilePath = fileCfg.Logger.LogFilePath
	}
	if fileCfg.Logger.EnabledTags != nil {
		c.Logger.EnabledTags = fileCfg.Logger.EnabledTags
	}
	if fileCfg.Logger.DisabledTags != nil {
		c.Logger.DisabledTags = fileCfg.Logger.DisabledTags
	}
	if fileCfg.Logger.EnabledPackages != nil {
		c.Logger.EnabledPackages = fileCfg.Logger.EnabledPackages
	}
	if fileCfg.Logger.DisabledPackages != nil {
		c.Logger.DisabledPackages = fileCfg.Logger.DisabledPackages
	}
	if fileCfg.Logger.EnabledFiles != nil {
		c.Logger.EnabledFiles = fileCfg.Logger.EnabledFiles
	}
	if fileCfg.Logger.DisabledFiles != nil {
		c.Logger.DisabledFiles = fileCfg.Logger.DisabledFiles
	}

	if fileCfg.Canvas.Width > 0 {
		c.Canvas.Width = fileCfg.Canvas.Width
	}
	if fileCfg.Canvas.Height > 0 {
		c.Canvas.Height = fileCfg.Canvas.Height
	}
	if fileCfg.Canvas.HistoryDepth > 0 {
		c.Canvas.HistoryDepth = fileCfg.Canvas.HistoryDepth
	}

	if fileCfg.Style.FontSize > 0 {
		c.Style.FontSize = fileCfg.Style.FontSize
	}
	if fileCfg.Style.Color != "" {
		c.Style.Color = fileCfg.Style.Color
	}

	// Apply boolean values from config file
	c.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
	if fileCfg.Editor.StatusBarHeight > 0 {
		c.Editor.StatusBarHeight = fileCfg.Editor.StatusBarHeight
	}
	if fileCfg.Editor.ExportPath != "" {
		c.Editor.ExportPath = fileCfg.Editor.ExportPath
	}
}

// applyEnvOverrides updates cfg from PLACARD_* environment variables.
// A .env file loaded at startup feeds these through the process env.
func applyEnvOverrides(c *Config) {
	if v := os.Getenv("PLACARD_LOG_LEVEL"); v != "" {
		c.Logger.LogLevel = v
	}
	if v := os.Getenv("PLACARD_LOG_FILE"); v != "" {
		c.Logger.LogFilePath = v
	}
	if v := os.Getenv("PLACARD_HISTORY_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Canvas.HistoryDepth = n
		}
	}
	if v := os.Getenv("PLACARD_SYSTEM_CLIPBOARD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Editor.SystemClipboard = b
		}
	}
	if v := os.Getenv("PLACARD_EXPORT_PATH"); v != "" {
		c.Editor.ExportPath = v
	}
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig() // Get defaults for comparison/reset

	// Validate Canvas config
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = defaults.Canvas.Width
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = defaults.Canvas.Height
	}
	if c.Canvas.HistoryDepth < 0 { // Allow 0 (unbounded)
		c.Canvas.HistoryDepth = defaults.Canvas.HistoryDepth
	}

	// Validate Style config
	if c.Style.FontSize <= 0 {
		c.Style.FontSize = defaults.Style.FontSize
	}
	if _, err := colorful.Hex(c.Style.Color); err != nil {
		c.Style.Color = defaults.Style.Color
	}

	// Validate Logger config
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	// Ensure StatusBarHeight has a valid value
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Editor.ExportPath == "" {
		c.Editor.ExportPath = defaults.Editor.ExportPath
	}
}

// LoadConfig orchestrates loading defaults, file, env, applying flags, and validation.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		// During initial load, avoid logging as logger isn't initialized yet
		verbose := false

		cfg := NewDefaultConfig() // Start with defaults

		// Determine effective config file path
		effectivePath := configFilePath
		if effectivePath == "" { // If flag not set, try default location
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			} else {
				// We can't log this yet as logger isn't initialized
				effectivePath = "" // Cannot load default path
			}
		}

		// Load from file if path is determined
		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath, verbose)
			if err != nil {
				// Store error to return later (can't log yet)
				loadErr = err
			} else if fileCfg != nil {
				cfg.merge(fileCfg)
			}
		}

		// Environment sits between file and flags
		applyEnvOverrides(cfg)

		// Apply flag overrides (if flags were parsed)
		if flags != nil {
			flags.ApplyOverrides(cfg, verbose) // Pass verbose flag here
		}

		// Validate the final merged configuration (no logging during initial load)
		cfg.validate()

		loadedConfig = cfg // Store globally
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		// This indicates a programming error - LoadConfig should be called in main.
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

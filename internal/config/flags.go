// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/okvee/placard/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Use pointers to distinguish between unset flags and zero-value flags.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	CanvasWidth    *float64
	CanvasHeight   *float64
	HistoryDepth   *int
	FontSize       *float64
	TextColor      *string
	ExportPath     *string
	// Add flags for logger filters
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	SystemClipboard *bool
}

// DefineFlags sets up the command-line flags and associates them with the Flags struct fields.
func (f *Flags) DefineFlags() {
	f.ConfigFilePath = flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = flag.Bool("version", false, "Show version information and exit")
	f.LogLevel = flag.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = flag.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.CanvasWidth = flag.Float64("canvas-width", 0, "Canvas width in units - Overrides config file")    // Use 0 to indicate unset
	f.CanvasHeight = flag.Float64("canvas-height", 0, "Canvas height in units - Overrides config file") // Use 0 to indicate unset
	f.HistoryDepth = flag.Int("history-depth", -1, "Max undo snapshots to keep, 0 for unlimited - Overrides config file")
	f.FontSize = flag.Float64("font-size", 0, "Font size for new labels - Overrides config file")
	f.TextColor = flag.String("color", "", "Hex color for new labels (e.g. #1a2b3c) - Overrides config file")
	f.ExportPath = flag.String("export", "", "Path for PNG export - Overrides config file")
	f.EnableTags = flag.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = flag.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = flag.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = flag.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = flag.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = flag.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.SystemClipboard = flag.Bool("system-clipboard", false, "Use system clipboard instead of internal clipboard")
}

// ParseFlags parses the defined command-line flags into the Flags struct.
// It returns the remaining non-flag arguments.
func (f *Flags) ParseFlags() []string {
	f.DefineFlags()
	flag.Parse()
	return flag.Args() // Return non-flag arguments
}

// ApplyOverrides updates the Config struct with values from flags *if* they were set.
func (f *Flags) ApplyOverrides(cfg *Config, verbose bool) {
	// Visit only processes flags that were actually set
	flag.Visit(func(fl *flag.Flag) {
		if verbose {
			logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		}
		switch fl.Name {
		case "loglevel":
			if f.LogLevel != nil && *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			if f.LogFilePath != nil { // Empty string is valid ("-")
				cfg.Logger.LogFilePath = *f.LogFilePath
			}
		case "canvas-width":
			if f.CanvasWidth != nil && *f.CanvasWidth > 0 {
				cfg.Canvas.Width = *f.CanvasWidth // Only override if positive
			}
		case "canvas-height":
			if f.CanvasHeight != nil && *f.CanvasHeight > 0 {
				cfg.Canvas.Height = *f.CanvasHeight // Only override if positive
			}
		case "history-depth":
			if f.HistoryDepth != nil && *f.HistoryDepth >= 0 {
				cfg.Canvas.HistoryDepth = *f.HistoryDepth // 0 means unlimited
			}
		case "font-size":
			if f.FontSize != nil && *f.FontSize > 0 {
				cfg.Style.FontSize = *f.FontSize
			}
		case "color":
			if f.TextColor != nil && *f.TextColor != "" {
				cfg.Style.Color = *f.TextColor
			}
		case "export":
			if f.ExportPath != nil && *f.ExportPath != "" {
				cfg.Editor.ExportPath = *f.ExportPath
			}
		case "system-clipboard":
			if f.SystemClipboard != nil {
				cfg.Editor.SystemClipboard = *f.SystemClipboard
			}
		case "log-tags":
			if f.EnableTags != nil && *f.EnableTags != "" {
				cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
			}
		case "log-disable-tags":
			if f.DisableTags != nil && *f.DisableTags != "" {
				cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
			}
		case "log-packages":
			if f.EnablePkgs != nil && *f.EnablePkgs != "" {
				cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
			}
		case "log-disable-packages":
			if f.DisablePkgs != nil && *f.DisablePkgs != "" {
				cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
			}
		case "log-files":
			if f.EnableFiles != nil && *f.EnableFiles != "" {
				cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
			}
		case "log-disable-files":
			if f.DisableFiles != nil && *f.DisableFiles != "" {
				cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
			}
		}
	})
}

// Helper function to split comma-separated list (can be moved to util)
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

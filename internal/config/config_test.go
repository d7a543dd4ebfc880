package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, DefaultHistoryDepth, cfg.Canvas.HistoryDepth)
	assert.Equal(t, DefaultFontSize, cfg.Style.FontSize)
	assert.Equal(t, DefaultTextColor, cfg.Style.Color)
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
	assert.Equal(t, DefaultExportFileName, cfg.Editor.ExportPath)
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Canvas.Width = -100
	cfg.Canvas.HistoryDepth = -5
	cfg.Style.FontSize = 0
	cfg.Style.Color = "chartreuse"
	cfg.Editor.StatusBarHeight = 0

	cfg.validate()

	assert.Equal(t, DefaultCanvasWidth, cfg.Canvas.Width)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	assert.Equal(t, DefaultHistoryDepth, cfg.Canvas.HistoryDepth)
	assert.Equal(t, DefaultFontSize, cfg.Style.FontSize)
	assert.Equal(t, DefaultTextColor, cfg.Style.Color)
	assert.Equal(t, "info", cfg.Logger.LogLevel)
	assert.Equal(t, StatusBarHeight, cfg.Editor.StatusBarHeight)
}

func TestValidateKeepsZeroHistoryDepth(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Canvas.HistoryDepth = 0 // unlimited

	cfg.validate()
	assert.Equal(t, 0, cfg.Canvas.HistoryDepth)
}

func TestMergeSkipsUnsetValues(t *testing.T) {
	cfg := NewDefaultConfig()
	fileCfg := &Config{}
	fileCfg.Canvas.Width = 1024
	fileCfg.Style.Color = "#336699"
	fileCfg.Logger.LogLevel = "debug"

	cfg.merge(fileCfg)

	assert.Equal(t, 1024.0, cfg.Canvas.Width)
	assert.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height, "unset height keeps its default")
	assert.Equal(t, DefaultHistoryDepth, cfg.Canvas.HistoryDepth)
	assert.Equal(t, "#336699", cfg.Style.Color)
	assert.Equal(t, "debug", cfg.Logger.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[logger]
log_level = "debug"

[canvas]
width = 1280.0
height = 720.0
history_depth = 50

[style]
font_size = 20.0
color = "#abcdef"

[editor]
system_clipboard = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadFromFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, 1280.0, cfg.Canvas.Width)
	assert.Equal(t, 720.0, cfg.Canvas.Height)
	assert.Equal(t, 50, cfg.Canvas.HistoryDepth)
	assert.Equal(t, 20.0, cfg.Style.FontSize)
	assert.Equal(t, "#abcdef", cfg.Style.Color)
	assert.True(t, cfg.Editor.SystemClipboard)
}

func TestLoadFromMissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "nope.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadFromBadFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("canvas = {{"), 0644))

	_, err := loadFromFile(path, false)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PLACARD_LOG_LEVEL", "warn")
	t.Setenv("PLACARD_HISTORY_DEPTH", "25")
	t.Setenv("PLACARD_SYSTEM_CLIPBOARD", "false")
	t.Setenv("PLACARD_EXPORT_PATH", "/tmp/out.png")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, "warn", cfg.Logger.LogLevel)
	assert.Equal(t, 25, cfg.Canvas.HistoryDepth)
	assert.False(t, cfg.Editor.SystemClipboard)
	assert.Equal(t, "/tmp/out.png", cfg.Editor.ExportPath)
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv("PLACARD_HISTORY_DEPTH", "many")
	t.Setenv("PLACARD_SYSTEM_CLIPBOARD", "sure")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	assert.Equal(t, DefaultHistoryDepth, cfg.Canvas.HistoryDepth)
	assert.Equal(t, SystemClipboard, cfg.Editor.SystemClipboard)
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, splitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, splitCommaList("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitCommaList(" a , b "))
	assert.Equal(t, []string{"a"}, splitCommaList("a,,"))
}

package config

import "time"

// Base application details
const AppName = "placard"
const Version = "0.1.0"
const ConfigDirName = "placard"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "placard.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas dimensions are abstract units, not terminal cells. The UI maps
// between the two when it draws.
const DefaultCanvasWidth = 800.0
const DefaultCanvasHeight = 600.0

// DefaultHistoryDepth bounds the number of document snapshots kept for
// undo. Zero keeps every snapshot.
const DefaultHistoryDepth = 100

// Style profile defaults for newly created labels.
const DefaultFontSize = 16.0
const DefaultTextColor = "#000000"

// These could be moved to NewDefaultConfig(), keeping here for now
const SystemClipboard = true
const DefaultExportFileName = "canvas.png"

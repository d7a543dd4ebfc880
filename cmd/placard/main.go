// cmd/placard/main.go
package main

import (
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/joho/godotenv"

	"github.com/okvee/placard/internal/app"
	"github.com/okvee/placard/internal/config"
	"github.com/okvee/placard/internal/logger"
)

func main() {
	// A local .env can seed the PLACARD_* overrides. Missing files are
	// the normal case and not an error.
	_ = godotenv.Load()

	// --- Argument & Flag Parsing ---
	flags := &config.Flags{}
	flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	// --- Configuration Loading (defaults -> file -> env -> flags) ---
	configPath := ""
	if flags.ConfigFilePath != nil {
		configPath = *flags.ConfigFilePath
	}
	cfg, err := config.LoadConfig(configPath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Logger Initialization ---
	logWriter := os.Stderr
	logFilePath := cfg.Logger.LogFilePath
	if logFilePath == "" {
		logFilePath = config.DefaultLogFileName
	}
	if logFilePath != "-" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			stlog.Fatalf("Failed to open log file '%s': %v", logFilePath, err)
		}
		defer logFile.Close() // Ensure log file is closed on exit
		logWriter = logFile
	}
	logger.Init(cfg.Logger, logWriter)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Canvas %gx%g, history depth %d", cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.HistoryDepth)
	logger.Debugf("Log file: %s", logFilePath)

	// --- Create and Run App ---
	placardApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := placardApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

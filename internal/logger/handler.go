package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to add custom filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Reference to processed config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	// Skip filtering if no config is available
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	// --- Extract Source Information ---
	var pkg, file string
	var sourceFound bool

	// First try to get source info from the Source attribute (most reliable)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
				file = filepath.Base(source.File)
				if file != "" {
					dirPath := filepath.Dir(source.File)
					pkg = filepath.Base(dirPath)
					sourceFound = true
				}
				return false // Stop iteration once we find source
			}
		}
		return true // Continue iteration
	})

	// If Source attribute not found, try using the PC
	if !sourceFound && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		if frame.File != "" {
			file = filepath.Base(frame.File)
			dirPath := filepath.Dir(frame.File)
			pkg = filepath.Base(dirPath)
			sourceFound = true
		}
	}

	// --- Apply Package Filtering ---
	if sourceFound && pkg != "" {
		pkgLower := strings.ToLower(pkg)

		if h.cfg.disabledPackagesSet != nil {
			if _, found := h.cfg.disabledPackagesSet[pkgLower]; found {
				return nil // Drop the message
			}
		}

		if h.cfg.enabledPackagesSet != nil {
			if _, found := h.cfg.enabledPackagesSet[pkgLower]; !found {
				return nil // Drop the message
			}
		}
	}

	// --- Apply File Filtering ---
	if sourceFound && file != "" {
		fileLower := strings.ToLower(file)

		if h.cfg.disabledFilesSet != nil {
			if _, found := h.cfg.disabledFilesSet[fileLower]; found {
				return nil // Drop the message
			}
		}

		if h.cfg.enabledFilesSet != nil {
			if _, found := h.cfg.enabledFilesSet[fileLower]; !found {
				return nil // Drop the message
			}
		}
	}

	// --- Apply Tag Filtering ---
	var tagValue string
	var tagFound bool

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			tagFound = true
			return false // Stop iteration
		}
		return true // Continue iteration
	})

	if tagFound {
		if h.cfg.disabledTagsSet != nil {
			if _, found := h.cfg.disabledTagsSet[tagValue]; found {
				return nil // Drop the message
			}
		}

		if h.cfg.enabledTagsSet != nil {
			if _, found := h.cfg.enabledTagsSet[tagValue]; !found {
				return nil // Drop the message
			}
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags but this message has none
		return nil // Drop the message
	}

	// The message passed all filters
	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}

// Package logging provides config-driven categorized logging backed by zap.
// Logging is controlled by debug_mode in the config: when false, every
// category gets a no-op logger and nothing is written.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"valentine/internal/config"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup and config
	CategoryRender   Category = "render"   // Console and page rendering
	CategoryArtifact Category = "artifact" // Output file writes
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
	cfg  config.LoggingConfig
)

// Initialize builds the root logger from cfg. Logs go to stderr so stdout
// carries only the poem and instructions. Should be called once at startup.
func Initialize(c config.LoggingConfig) error {
	logger, err := build(c)
	if err != nil {
		return err
	}

	mu.Lock()
	old := base
	base = logger
	cfg = c
	mu.Unlock()

	_ = old.Sync()
	return nil
}

// InitializeWith installs an existing logger, mainly for tests.
func InitializeWith(logger *zap.Logger, c config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	base = logger
	cfg = c
}

func build(c config.LoggingConfig) (*zap.Logger, error) {
	if !c.DebugMode {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Get returns a logger for the given category.
// Returns a no-op logger if debug mode is disabled or the category is disabled.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()

	if !cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop().Sugar()
	}
	return base.Named(string(category)).Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}

package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"VALENTINE_LOG_LEVEL"`   // debug, info, warn, error
	Format     string          `yaml:"format" env:"VALENTINE_LOG_FORMAT"` // console, json
	DebugMode  bool            `yaml:"debug_mode" env:"VALENTINE_DEBUG"`  // Master toggle - false = no logging
	Categories map[string]bool `yaml:"categories"`                        // Per-category toggles
}

// IsCategoryEnabled returns whether logging is enabled for a category.
// Returns false if debug_mode is false.
// Returns true if debug_mode is true and category is enabled (or not specified).
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true // Enable by default if not specified
	}
	return enabled
}

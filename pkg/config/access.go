package config

import "sync"

// Global configuration instance
var (
	mu           sync.RWMutex
	globalConfig *Config
)

// Initialize sets up the global configuration
func Initialize(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = Default()
	}
	globalConfig = cfg
}

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	if globalConfig != nil {
		cfg := *globalConfig
		mu.RUnlock()
		return &cfg
	}
	mu.RUnlock()

	Initialize(nil)
	return Get()
}

// SetWidth mutates the process-wide default width. Per the rendering
// contract this happens during initialization, not while render calls
// are in flight; callers needing per-call isolation pass an explicit
// width to the renderer instead.
func SetWidth(width int) error {
	cfg := &Config{Width: width}
	if err := cfg.Validate(); err != nil {
		return err
	}
	Initialize(cfg)
	return nil
}

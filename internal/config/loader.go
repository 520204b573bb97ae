package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.gander/config.yaml -> ./configs/gander.yaml -> embedded default.
// Keys missing from a file keep their Default() values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/gander.yaml"); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gander", filename)
}

// Validate reports every setting that cannot be used.
func (c Config) Validate() error {
	var errs []error
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	if c.Display.HoldWindow < 0 {
		errs = append(errs, errors.New("display.hold_window must not be negative"))
	}
	if c.Console.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("console.capacity must be positive, got %d", c.Console.Capacity))
	}
	if c.Console.ScriptTimeout < 0 {
		errs = append(errs, errors.New("console.script_timeout must not be negative"))
	}
	switch c.Console.Engine {
	case "lua", "javascript", "js":
	default:
		errs = append(errs, fmt.Errorf("console.engine must be lua or javascript, got %q", c.Console.Engine))
	}
	b := c.Battle
	if b.Radius <= 0 {
		errs = append(errs, errors.New("battle.radius must be positive"))
	}
	if b.SpaceWidth <= b.Radius || b.SpaceDepth <= b.Radius {
		errs = append(errs, errors.New("battle arena must be larger than a sphere"))
	}
	if c.DefaultScreen == "" {
		errs = append(errs, errors.New("default_screen must be set"))
	}
	return errors.Join(errs...)
}

// ErrUnknownScreen is returned by CheckScreen for ids not in known.
var ErrUnknownScreen = errors.New("config: unknown default_screen")

// CheckScreen verifies default_screen against the registered ids.
func (c Config) CheckScreen(known func(id string) bool) error {
	if !known(c.DefaultScreen) {
		return fmt.Errorf("%w %q", ErrUnknownScreen, c.DefaultScreen)
	}
	return nil
}

// Package config provides YAML-based configuration loading for gander.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Display       DisplayConfig   `yaml:"display"`
	Console       ConsoleConfig   `yaml:"console"`
	Battle        BattleConfig    `yaml:"battle"`
	Resources     ResourcesConfig `yaml:"resources"`
	Log           LogConfig       `yaml:"log"`
	DefaultScreen string          `yaml:"default_screen"` // Registry id pushed at start and by reset_stack
}

// DisplayConfig defines the frame loop and terminal surface.
type DisplayConfig struct {
	FPS        int           `yaml:"fps"`
	HoldWindow time.Duration `yaml:"hold_window"` // How long a key press counts as held
	Width      int           `yaml:"width"`       // Used until the terminal reports its size
	Height     int           `yaml:"height"`
}

// ConsoleConfig defines the debug overlay.
type ConsoleConfig struct {
	Capacity      int           `yaml:"capacity"`       // Lines and history entries kept
	ScriptTimeout time.Duration `yaml:"script_timeout"` // 0 disables the deadline
	Engine        string        `yaml:"engine"`         // "lua" or "javascript"
	ShowFPS       bool          `yaml:"show_fps"`
}

// BattleConfig defines the battle arena constants.
type BattleConfig struct {
	SpaceWidth float64   `yaml:"space_width"`
	SpaceDepth float64   `yaml:"space_depth"`
	MoveSpeed  float64   `yaml:"move_speed"`
	AutoSpeed  float64   `yaml:"auto_speed"`
	DirVarMax  float64   `yaml:"dir_var_max"`
	DropAcc    float64   `yaml:"drop_acc"`
	Radius     float64   `yaml:"radius"`
	RestHeight float64   `yaml:"rest_height"`
	DropHeight float64   `yaml:"drop_height"`
	Floor      BoxConfig `yaml:"floor"`
}

// BoxConfig is an axis-aligned box given by center and full size.
type BoxConfig struct {
	Center [3]float64 `yaml:"center"`
	Size   [3]float64 `yaml:"size"`
}

// ResourcesConfig defines where resources are loaded from.
type ResourcesConfig struct {
	Root    string `yaml:"root"`    // Directory loose files are resolved against
	Archive string `yaml:"archive"` // Content archive fallback; empty disables it
	Music   string `yaml:"music"`   // Track name reported by the music player
}

// LogConfig defines the log file.
type LogConfig struct {
	Path  string `yaml:"path"`  // Empty discards logs
	Debug bool   `yaml:"debug"` // Enables debug-level diagnostics
}

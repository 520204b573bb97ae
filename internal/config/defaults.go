package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gander.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:        60,
			HoldWindow: 150 * time.Millisecond,
			Width:      80,
			Height:     24,
		},
		Console: ConsoleConfig{
			Capacity:      25,
			ScriptTimeout: 2 * time.Second,
			Engine:        "lua",
			ShowFPS:       true,
		},
		Battle: BattleConfig{
			SpaceWidth: 2.0,
			SpaceDepth: 2.0,
			MoveSpeed:  1.0,
			AutoSpeed:  1.0,
			DirVarMax:  1.0,
			DropAcc:    2.0,
			Radius:     0.2,
			RestHeight: 0.21,
			DropHeight: 1.0,
			Floor: BoxConfig{
				Center: [3]float64{0, -1, 0},
				Size:   [3]float64{10, 2, 10},
			},
		},
		Resources: ResourcesConfig{
			Root:    ".",
			Archive: "data",
			Music:   "res/music.ogg",
		},
		Log: LogConfig{
			Path:  "~/.gander/gander.log",
			Debug: false,
		},
		DefaultScreen: "battle",
	}
}

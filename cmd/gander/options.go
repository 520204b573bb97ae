package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/audio"
	"github.com/vovakirdan/gander/internal/config"
	"github.com/vovakirdan/gander/internal/core"
	"github.com/vovakirdan/gander/internal/resource"
	"github.com/vovakirdan/gander/internal/screens/battle"
	"github.com/vovakirdan/gander/internal/screens/debug"
	"github.com/vovakirdan/gander/internal/script"
)

// runtimeConfig applies command-line overrides to the configured display.
func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	rc := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   cfg.Display.FPS,
		Seed:       flagSeed,
		HoldWindow: cfg.Display.HoldWindow,
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	return rc
}

func battleParams(b config.BattleConfig) battle.Params {
	vec := func(v [3]float64) core.Vec3 { return core.Vec3{X: v[0], Y: v[1], Z: v[2]} }
	return battle.Params{
		SpaceWidth: b.SpaceWidth,
		SpaceDepth: b.SpaceDepth,
		MoveSpeed:  b.MoveSpeed,
		AutoSpeed:  b.AutoSpeed,
		DirVarMax:  b.DirVarMax,
		DropAcc:    b.DropAcc,
		Radius:     b.Radius,
		RestHeight: b.RestHeight,
		DropHeight: b.DropHeight,
		Floor: core.Box{
			Center: vec(b.Floor.Center),
			Size:   vec(b.Floor.Size),
		},
	}
}

func battleOptions(cfg config.Config, loader *resource.Loader, music audio.Player, seed int64) battle.Options {
	return battle.Options{
		Params: battleParams(cfg.Battle),
		Loader: loader,
		Music:  music,
		Seed:   seed,
	}
}

func debugOptions(cfg config.Config, logger *log.Logger) debug.Options {
	kind, err := script.ParseKind(cfg.Console.Engine)
	if err != nil {
		logger.Warn("unknown script engine, using lua", "engine", cfg.Console.Engine)
	}
	return debug.Options{
		Capacity:      cfg.Console.Capacity,
		ScriptTimeout: cfg.Console.ScriptTimeout,
		Engine:        kind,
		DefaultScreen: cfg.DefaultScreen,
		ShowFPS:       cfg.Console.ShowFPS,
	}
}

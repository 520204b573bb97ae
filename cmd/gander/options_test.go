package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gander/internal/config"
	"github.com/vovakirdan/gander/internal/screens/battle"
	"github.com/vovakirdan/gander/internal/script"
)

func TestBattleParamsMatchDefaults(t *testing.T) {
	got := battleParams(config.Default().Battle)
	if got != battle.DefaultParams() {
		t.Errorf("battleParams(default) = %+v, expected %+v", got, battle.DefaultParams())
	}
}

func TestDebugOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Console.Engine = "javascript"
	cfg.Console.ScriptTimeout = time.Second
	cfg.DefaultScreen = "blank"

	opts := debugOptions(cfg, log.New(&bytes.Buffer{}))
	if opts.Engine != script.KindJS {
		t.Errorf("Engine = %v, expected javascript", opts.Engine)
	}
	if opts.ScriptTimeout != time.Second || opts.DefaultScreen != "blank" || opts.Capacity != 25 {
		t.Errorf("debugOptions() = %+v", opts)
	}

	var buf bytes.Buffer
	cfg.Console.Engine = "ruby"
	if opts := debugOptions(cfg, log.New(&buf)); opts.Engine != script.KindLua {
		t.Errorf("Engine = %v, expected lua fallback", opts.Engine)
	}
	if buf.Len() == 0 {
		t.Error("unknown engine should be logged")
	}
}

func TestRuntimeConfigOverrides(t *testing.T) {
	cfg := config.Default()

	rc := runtimeConfig(cfg, 100, 30)
	if rc.TickRate != 60 || rc.ScreenW != 100 || rc.ScreenH != 30 || rc.HoldWindow != cfg.Display.HoldWindow {
		t.Errorf("runtimeConfig() = %+v", rc)
	}

	flagFPS = 30
	defer func() { flagFPS = 0 }()
	if rc := runtimeConfig(cfg, 100, 30); rc.TickRate != 30 {
		t.Errorf("TickRate = %d, expected the --fps override", rc.TickRate)
	}
}

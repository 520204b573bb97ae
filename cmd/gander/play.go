package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gander/internal/audio"
	"github.com/vovakirdan/gander/internal/config"
	"github.com/vovakirdan/gander/internal/logging"
	"github.com/vovakirdan/gander/internal/platform/tui"
	"github.com/vovakirdan/gander/internal/registry"
	"github.com/vovakirdan/gander/internal/resource"
	"github.com/vovakirdan/gander/internal/screens/battle"
	"github.com/vovakirdan/gander/internal/screens/blank"
	"github.com/vovakirdan/gander/internal/screens/debug"
	"github.com/vovakirdan/gander/internal/stack"
)

var playCmd = &cobra.Command{
	Use:   "play [screen]",
	Short: "Run the application",
	Long: `Start on the given screen (default_screen from the config otherwise)
with the debug overlay on top.

Controls:
  ` + "`" + `            - Show/hide the script console
  W/A/S/D      - Move the green sphere
  Arrows       - Move the red sphere
  Up/Down      - Console history (while the console is open)
  Ctrl+S       - Save a plain-text screenshot
  Ctrl+C       - Quit

Console examples:
  set_flag("auto-movement-enabled", true)
  toggle_flag("fps-display-enabled")
  set_flag("engine-swap-request", true)
  help()`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDebug {
		cfg.Log.Debug = true
	}
	if len(args) == 1 {
		cfg.DefaultScreen = args[0]
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	loader := resource.NewLoader(cfg.Resources.Root, cfg.Resources.Archive, logger)
	defer loader.Close()
	music := audio.NewLogPlayer(cfg.Resources.Music, logger)

	// Install configured factories over the registered defaults
	overlay := debug.Factory(debugOptions(cfg, logger))
	configured := map[string]stack.Factory{
		battle.ID: battle.Factory(battleOptions(cfg, loader, music, flagSeed)),
		debug.ID:  overlay,
	}
	for id, f := range configured {
		if err := registry.Replace(id, f); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := cfg.CheckScreen(registry.Exists); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gander screens' to see available screens.")
		os.Exit(1)
	}
	start, _ := registry.Factory(cfg.DefaultScreen)

	// Get terminal size; the first window-size message corrects it
	width, height := cfg.Display.Width, cfg.Display.Height
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := runtimeConfig(cfg, width, height)

	display := tui.NewDisplay(width, height)
	keys := tui.NewKeys(rc.HoldWindow)
	st := stack.New(display, keys, stack.Options{
		Fallback:        blank.Factory,
		FallbackOverlay: overlay,
		Logger:          logger,
	})
	st.PushConstructing(start)
	st.SetOverlay(overlay)

	logger.Info("starting", "screen", cfg.DefaultScreen, "fps", rc.TickRate, "engine", cfg.Console.Engine)
	runErr := tui.Run(st, keys, display, rc)

	// Release screens before potential exit
	st.Close()

	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running gander: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("exited")
}

// gander runs a stack of terminal screens with a scriptable debug console.
//
// Usage:
//
//	gander [screen]          - Run, starting on the given or configured screen
//	gander play [screen]     - Same as above
//	gander screens           - List registered screens
//	gander flags             - List the well-known shared flags
//
// Global flags:
//
//	--config <path> - Config file (default search: ~/.gander/config.yaml, ./configs/gander.yaml)
//	--fps <rate>    - Override the frame rate
//	--seed <value>  - RNG seed for reproducible auto movement
//	--debug         - Log debug-level diagnostics
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import screens to register them
	_ "github.com/vovakirdan/gander/internal/screens/battle"
	_ "github.com/vovakirdan/gander/internal/screens/blank"
	_ "github.com/vovakirdan/gander/internal/screens/debug"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gander [screen]",
	Short: "gander - screens with a live script console",
	Long: `gander runs a stack of full-terminal screens. A debug overlay with a
Lua/JavaScript console is always available: press ` + "`" + ` to toggle it.

Available commands:
  play     - Run the application (default)
  screens  - Show registered screens
  flags    - Show the well-known shared flags

Examples:
  gander
  gander play blank
  gander --seed 42 --debug
  gander --config ./my-gander.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug-level diagnostics")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(screensCmd)
	rootCmd.AddCommand(flagsCmd)
}

// notsure is a 2-D collision workbench: it runs box overlap and exact segment
// intersection probes over YAML scenes, shows them in the terminal and keeps
// a history of probe runs.
//
// Usage:
//
//	notsure list                  - List scenes and probes
//	notsure check <scene>...      - Run probes against scenes
//	notsure view [scene]...       - Explore scenes interactively
//	notsure serve                 - Serve the viewer over SSH
//	notsure history [scene]       - Show saved probe runs
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.notsure, ./configs)
//	--db <path>         - History database (default: ~/.notsure/history.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--scenes <dir>      - Extra scene directory (default: ./scenes)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/config"

	// Import probes to register them
	_ "github.com/vovakirdan/notsure/internal/probes"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagSceneDir string

	// Set by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "notsure",
	Short: "notsure - 2-D collision probes in your terminal",
	Long: `notsure checks axis-aligned boxes and line segments for collisions.

Scenes are YAML files of named bodies and segments. Probes run a
collision check over every pair in a scene.

Available commands:
  list     - Show scenes and probes
  check    - Run probes against scenes
  view     - Interactive scene viewer
  serve    - Serve the viewer over SSH
  history  - Browse saved probe runs

Examples:
  notsure list
  notsure check crossing --probe rays
  notsure check --all --save
  notsure view tunnel
  notsure history crossing`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagSceneDir, "scenes", "scenes", "Directory with extra scene files")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads .env and the config, applies flag overrides and builds the logger.
func setup(_ *cobra.Command, _ []string) error {
	//nolint:errcheck // .env is optional
	godotenv.Load()

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(loaded.Log.Level)
	if err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	cfg = loaded
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "notsure",
		Level:           level,
	})
	logger.Debug("config loaded", "db", cfg.Storage.DBPath, "scale", cfg.Viewer.Scale)
	return nil
}

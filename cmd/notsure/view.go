package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/platform/tui"
	"github.com/vovakirdan/notsure/internal/storage"
)

var viewCmd = &cobra.Command{
	Use:   "view [scene]...",
	Short: "Explore scenes interactively",
	Long: `Open the interactive viewer. Without arguments every known scene is
loaded; cycle through them with n/N.

Controls:
  Arrows/hjkl  - Move the selected body
  Tab/S-Tab    - Select next/previous body
  p            - Show next probe
  n/N          - Next/previous scene
  [ ]          - Scroll results
  r            - Reload scene from disk
  w            - Save run to history
  Ctrl+S       - Save screenshot to ~/.notsure/screenshots
  ?            - Toggle help
  q/Ctrl+C     - Quit

Examples:
  notsure view
  notsure view tunnel`,
	RunE: runView,
}

func runView(_ *cobra.Command, args []string) error {
	scenes, err := resolveScenes(args)
	if err != nil {
		return err
	}

	// Saving runs is optional in the viewer
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := terminalSize()
	return tui.Run(scenes, store, cfg.Viewer, width, height)
}

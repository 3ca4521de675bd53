package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/platform/tui"
	"github.com/vovakirdan/notsure/internal/scene"
	"github.com/vovakirdan/notsure/internal/storage"
)

var (
	flagLimit       int
	flagClear       bool
	flagInteractive bool
	flagRun         string
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show saved probe runs",
	Long: `Display the most recent probe runs saved with 'check --save' or from
the viewer.

Examples:
  notsure history
  notsure history crossing --limit 5
  notsure history -i
  notsure history --run <id>
  notsure history crossing --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs instead of showing them")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in the terminal UI")
	historyCmd.Flags().StringVar(&flagRun, "run", "", "Show the stored results of one run")
}

func runHistory(_ *cobra.Command, args []string) error {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearRuns(sceneID)
		if err != nil {
			return err
		}
		logger.Info("cleared runs", "count", n, "scene", sceneID)
		return nil
	}

	if flagRun != "" {
		return printRun(os.Stdout, store, flagRun)
	}

	if flagInteractive {
		scenes, err := scene.All(flagSceneDir)
		if err != nil {
			return err
		}
		ids := scene.IDs(scenes)
		if sceneID != "" {
			ids = []string{sceneID}
		}
		width, height := terminalSize()
		return tui.RunHistory(store, ids, width, height)
	}

	runs, err := store.RecentRuns(sceneID, flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'notsure check <scene> --save' to record one.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-10s  %-9s  %s\n", "Date", "Scene", "Probe", "Hits", "Run")
	fmt.Printf("  %-16s  %-12s  %-10s  %-9s  %s\n", "----", "-----", "-----", "----", "---")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-12s  %-10s  %-9s  %s\n",
			r.CreatedAt().Format("2006-01-02 15:04"),
			r.SceneID,
			r.ProbeID,
			fmt.Sprintf("%d/%d", r.Hits, r.Total),
			r.ID,
		)
	}
	return nil
}

// printRun writes a run's summary followed by its stored results.
func printRun(w io.Writer, store *storage.Store, id string) error {
	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	rows, err := store.RunResults(run.ID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Run %s\n", run.ID)
	fmt.Fprintf(w, "  scene %s (%s), probe %s, %d/%d hits, %s\n\n",
		run.SceneID, run.SceneHash, run.ProbeID, run.Hits, run.Total,
		run.CreatedAt().Format("2006-01-02 15:04"))

	for _, r := range rows {
		mark := " "
		if r.Hit {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %-12s %-12s %-7s", mark, r.Subject, r.Target, r.Side)
		switch r.Kind {
		case "point":
			fmt.Fprintf(w, " point (%g,%g)", r.X1, r.Y1)
		case "line":
			fmt.Fprintf(w, " line (%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2)
		}
		fmt.Fprintln(w)
	}
	return nil
}

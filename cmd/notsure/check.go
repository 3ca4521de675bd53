package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/probes"
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
	"github.com/vovakirdan/notsure/internal/storage"
)

var (
	flagProbes   []string
	flagAll      bool
	flagSave     bool
	flagHitsOnly bool
	flagFile     string
)

var checkCmd = &cobra.Command{
	Use:   "check [scene]...",
	Short: "Run probes against scenes",
	Long: `Run collision probes over one or more scenes and print every result.

Without --probe every registered probe runs. Scenes are evaluated
concurrently; output is in the order given.

Examples:
  notsure check crossing
  notsure check crossing stack --probe aabb --probe edges
  notsure check --all --hits
  notsure check --file ./my-scene.yaml --save`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringSliceVar(&flagProbes, "probe", nil, "Probe to run (repeatable, default all)")
	checkCmd.Flags().BoolVar(&flagAll, "all", false, "Check every known scene")
	checkCmd.Flags().BoolVar(&flagSave, "save", false, "Save runs to the history database")
	checkCmd.Flags().BoolVar(&flagHitsOnly, "hits", false, "Only print results that hit")
	checkCmd.Flags().StringVar(&flagFile, "file", "", "Check a scene file instead of scene IDs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	var scenes []*scene.Scene
	switch {
	case flagFile != "":
		s, err := scene.Load(flagFile, "", "")
		if err != nil {
			return err
		}
		scenes = []*scene.Scene{s}
	case len(args) > 0:
		var err error
		if scenes, err = resolveScenes(args); err != nil {
			return err
		}
	case flagAll:
		var err error
		if scenes, err = resolveScenes(nil); err != nil {
			return err
		}
	default:
		return errors.New("check: name a scene, or pass --all or --file")
	}

	for _, id := range flagProbes {
		if !registry.Exists(id) {
			return fmt.Errorf("%w %q (run 'notsure list')", registry.ErrUnknownProbe, id)
		}
	}

	reports, err := probes.Run(cmd.Context(), scenes, flagProbes)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	for _, r := range reports {
		printReport(r)

		if store != nil {
			key := storage.RunKey{
				SceneID:   r.Scene.ID,
				SceneHash: r.Scene.Fingerprint(),
				ProbeID:   r.Probe,
			}
			run, err := store.SaveRun(key, storage.RowsFromResults(r.Results))
			if err != nil {
				return err
			}
			logger.Info("saved run", "id", run.ID, "scene", run.SceneID, "probe", run.ProbeID)
		}
	}
	return nil
}

func printReport(r probes.Report) {
	fmt.Printf("%s / %s: %d of %d hit\n", r.Scene.ID, r.Probe, r.Hits(), len(r.Results))

	for _, res := range r.Results {
		if flagHitsOnly && !res.Hit {
			continue
		}
		mark := "  "
		if res.Hit {
			mark = "✔ "
		}
		line := fmt.Sprintf("  %s%s → %s", mark, res.Subject, res.Target)
		if res.HasSide {
			line += " [" + res.Side.String() + "]"
		}
		if res.Intersection != nil {
			line += " at " + res.Intersection.String()
		}
		fmt.Println(line)
	}
	fmt.Println()
}

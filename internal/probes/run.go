package probes

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

// Report holds the results of one probe over one scene.
type Report struct {
	Scene   *scene.Scene
	Probe   string
	Results []registry.Result
}

// Hits counts the results that found a collision.
func (r Report) Hits() int {
	n := 0
	for _, res := range r.Results {
		if res.Hit {
			n++
		}
	}
	return n
}

// Run evaluates every probe in probeIDs against every scene. An empty
// probeIDs runs all registered probes. Reports are ordered scene-major in
// the order given. Scenes are evaluated concurrently; the first error or
// a cancelled ctx stops the run.
func Run(ctx context.Context, scenes []*scene.Scene, probeIDs []string) ([]Report, error) {
	if len(probeIDs) == 0 {
		probeIDs = registry.IDs()
	}

	probes := make([]registry.Probe, 0, len(probeIDs))
	for _, id := range probeIDs {
		p, err := registry.Create(id)
		if err != nil {
			return nil, err
		}
		probes = append(probes, p)
	}

	reports := make([]Report, len(scenes)*len(probes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range scenes {
		g.Go(func() error {
			for j, p := range probes {
				if err := ctx.Err(); err != nil {
					return fmt.Errorf("probes: %s/%s: %w", s.ID, p.ID(), err)
				}
				reports[i*len(probes)+j] = Report{
					Scene:   s,
					Probe:   p.ID(),
					Results: p.Run(s),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

package probes

import (
	"github.com/vovakirdan/notsure/internal/body"
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

func init() {
	registry.Register("edges", func() registry.Probe { return edgesProbe{} })
}

// edgesProbe reports, per body pair, which edges of the first body touch
// any edge of the second.
type edgesProbe struct{}

func (edgesProbe) ID() string    { return "edges" }
func (edgesProbe) Title() string { return "Edge contacts between every pair of bodies" }

func (p edgesProbe) Run(s *scene.Scene) []registry.Result {
	bodies := s.Bodies()

	var results []registry.Result
	eachPair(len(bodies), func(i, j int) {
		touched := bodies[i].Body.EdgeIntersections(bodies[j].Body)
		for _, side := range body.Sides {
			results = append(results, registry.Result{
				Probe:   p.ID(),
				Subject: bodies[i].Name,
				Target:  bodies[j].Name,
				Hit:     touched[side],
				HasSide: true,
				Side:    side,
			})
		}
	})
	return results
}

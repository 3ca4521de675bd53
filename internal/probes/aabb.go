package probes

import (
	"github.com/vovakirdan/notsure/internal/core"
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

func init() {
	registry.Register("aabb", func() registry.Probe { return aabbProbe{} })
}

// aabbProbe tests every pair of bodies for box overlap.
type aabbProbe struct{}

func (aabbProbe) ID() string    { return "aabb" }
func (aabbProbe) Title() string { return "Box overlap between every pair of bodies" }

func (p aabbProbe) Run(s *scene.Scene) []registry.Result {
	bodies := s.Bodies()

	var results []registry.Result
	eachPair(len(bodies), func(i, j int) {
		results = append(results, registry.Result{
			Probe:   p.ID(),
			Subject: bodies[i].Name,
			Target:  bodies[j].Name,
			Hit:     core.Overlaps(bodies[i].Body, bodies[j].Body),
		})
	})
	return results
}

// eachPair calls fn for every unordered index pair i < j below n.
func eachPair(n int, fn func(i, j int)) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			fn(i, j)
		}
	}
}

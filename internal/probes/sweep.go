package probes

import (
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

func init() {
	registry.Register("sweep", func() registry.Probe { return sweepProbe{} })
}

// sweepProbe catches collisions that happened between the previous and the
// current position of either body.
type sweepProbe struct{}

func (sweepProbe) ID() string    { return "sweep" }
func (sweepProbe) Title() string { return "Swept collisions over the last move" }

func (p sweepProbe) Run(s *scene.Scene) []registry.Result {
	bodies := s.Bodies()

	var results []registry.Result
	eachPair(len(bodies), func(i, j int) {
		a, b := bodies[i].Body, bodies[j].Body
		results = append(results, registry.Result{
			Probe:   p.ID(),
			Subject: bodies[i].Name,
			Target:  bodies[j].Name,
			Hit:     a.Swept(b) || b.Swept(a),
		})
	})
	return results
}

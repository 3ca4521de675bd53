package probes

import (
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

func init() {
	registry.Register("segments", func() registry.Probe { return segmentsProbe{} })
}

// segmentsProbe intersects every pair of free segments.
type segmentsProbe struct{}

func (segmentsProbe) ID() string    { return "segments" }
func (segmentsProbe) Title() string { return "Intersections between every pair of segments" }

func (p segmentsProbe) Run(s *scene.Scene) []registry.Result {
	segs := s.Segments()

	var results []registry.Result
	eachPair(len(segs), func(i, j int) {
		a, b := segs[i], segs[j]
		r := registry.Result{
			Probe:   p.ID(),
			Subject: a.Name,
			Target:  b.Name,
			Hit:     a.Segment.IntersectsWith(b.Segment),
		}
		if r.Hit {
			in := a.Segment.IntersectionPoint(b.Segment)
			r.Intersection = &in
		}
		results = append(results, r)
	})
	return results
}

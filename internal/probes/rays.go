package probes

import (
	"github.com/vovakirdan/notsure/internal/registry"
	"github.com/vovakirdan/notsure/internal/scene"
)

func init() {
	registry.Register("rays", func() registry.Probe { return raysProbe{} })
}

// raysProbe casts every free segment against every body.
type raysProbe struct{}

func (raysProbe) ID() string    { return "rays" }
func (raysProbe) Title() string { return "Segments against body edges" }

func (p raysProbe) Run(s *scene.Scene) []registry.Result {
	bodies := s.Bodies()

	var results []registry.Result
	for _, seg := range s.Segments() {
		for _, b := range bodies {
			hits := b.Body.IntersectSegment(seg.Segment)
			if len(hits) == 0 {
				results = append(results, registry.Result{
					Probe:   p.ID(),
					Subject: seg.Name,
					Target:  b.Name,
				})
				continue
			}
			for _, h := range hits {
				in := h.Intersection
				results = append(results, registry.Result{
					Probe:        p.ID(),
					Subject:      seg.Name,
					Target:       b.Name,
					Hit:          true,
					HasSide:      true,
					Side:         h.Side,
					Intersection: &in,
				})
			}
		}
	}
	return results
}

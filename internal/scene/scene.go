// Package scene describes collections of bodies and free segments that the
// collision probes run against. Scenes are plain YAML documents.
package scene

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/notsure/internal/body"
	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/core"
)

var (
	// ErrNotFound is returned when no scene with the requested ID exists.
	ErrNotFound = errors.New("scene: not found")
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("scene: invalid")
)

// Point is an [x, y] pair in YAML.
type Point [2]float32

// Vec converts the pair to a vector.
func (p Point) Vec() core.Vec2 {
	return core.V(p[0], p[1])
}

// BodySpec describes a body. Offset, when set, moves the body once after
// placement so that it carries a previous position for swept checks.
type BodySpec struct {
	Name   string `yaml:"name"`
	Center Point  `yaml:"center"`
	Size   Point  `yaml:"size"`
	Offset *Point `yaml:"offset,omitempty"`
}

// SegmentSpec describes a free segment (a ray, a laser, a wire).
type SegmentSpec struct {
	Name  string `yaml:"name"`
	Start Point  `yaml:"start"`
	End   Point  `yaml:"end"`
}

// Scene is a named set of bodies and segments.
type Scene struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description,omitempty"`
	BodySpecs    []BodySpec    `yaml:"bodies"`
	SegmentSpecs []SegmentSpec `yaml:"segments"`

	// FilePath is where the scene was loaded from, empty for built-ins.
	FilePath string `yaml:"-"`
}

// NamedBody pairs a body with its scene name.
type NamedBody struct {
	Name string
	Body body.Body
}

// NamedSegment pairs a segment with its scene name.
type NamedSegment struct {
	Name    string
	Segment collide.Segment
}

// Bodies builds fresh bodies from the scene description.
// Each call returns independent values that callers may move freely.
func (s *Scene) Bodies() []NamedBody {
	out := make([]NamedBody, 0, len(s.BodySpecs))
	for _, spec := range s.BodySpecs {
		b := body.New(spec.Center.Vec(), spec.Size.Vec())
		if spec.Offset != nil {
			b.Offset(spec.Offset.Vec())
		}
		out = append(out, NamedBody{Name: spec.Name, Body: b})
	}
	return out
}

// Segments builds the scene's free segments.
func (s *Scene) Segments() []NamedSegment {
	out := make([]NamedSegment, 0, len(s.SegmentSpecs))
	for _, spec := range s.SegmentSpecs {
		out = append(out, NamedSegment{
			Name:    spec.Name,
			Segment: collide.NewSegment(spec.Start.Vec(), spec.End.Vec()),
		})
	}
	return out
}

// Title returns the display name, falling back to the ID.
func (s *Scene) Title() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

// Validate checks that the scene is usable.
func (s *Scene) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}

	seen := make(map[string]bool)
	claim := func(kind, name string) error {
		if name == "" {
			return fmt.Errorf("%w: %s without a name in %q", ErrInvalid, kind, s.ID)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate name %q in %q", ErrInvalid, name, s.ID)
		}
		seen[name] = true
		return nil
	}

	for _, b := range s.BodySpecs {
		if err := claim("body", b.Name); err != nil {
			return err
		}
		if b.Size[0] < 0 || b.Size[1] < 0 {
			return fmt.Errorf("%w: body %q has negative size", ErrInvalid, b.Name)
		}
	}
	for _, seg := range s.SegmentSpecs {
		if err := claim("segment", seg.Name); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy that can be moved without touching s.
func (s *Scene) Clone() *Scene {
	c := *s
	c.BodySpecs = make([]BodySpec, len(s.BodySpecs))
	for i, b := range s.BodySpecs {
		if b.Offset != nil {
			off := *b.Offset
			b.Offset = &off
		}
		c.BodySpecs[i] = b
	}
	c.SegmentSpecs = append([]SegmentSpec(nil), s.SegmentSpecs...)
	return &c
}

// Move shifts the named body by delta. The body's current position becomes
// its previous one, so swept checks see exactly this move. Reports false if
// no body has that name.
func (s *Scene) Move(name string, delta core.Vec2) bool {
	for i := range s.BodySpecs {
		spec := &s.BodySpecs[i]
		if spec.Name != name {
			continue
		}
		center := spec.Center.Vec()
		if spec.Offset != nil {
			center = center.Add(spec.Offset.Vec())
		}
		spec.Center = Point{center.X, center.Y}
		spec.Offset = &Point{delta.X, delta.Y}
		return true
	}
	return false
}

// Fingerprint hashes the scene's contents, including moved bodies. Two
// scenes with the same fingerprint produce the same probe results.
func (s *Scene) Fingerprint() string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

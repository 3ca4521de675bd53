// Package registry provides a global registry of collision probes.
// Probes register themselves in init() functions, so commands can discover
// and run them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/notsure/internal/body"
	"github.com/vovakirdan/notsure/internal/collide"
	"github.com/vovakirdan/notsure/internal/scene"
)

// ErrUnknownProbe is returned by Create for an unregistered ID.
var ErrUnknownProbe = errors.New("registry: unknown probe")

// Result is one finding of a probe: whether Subject hit Target and, when the
// probe computes it, where.
type Result struct {
	Probe   string
	Subject string
	Target  string
	Hit     bool

	// HasSide is set when Side names the body edge involved.
	HasSide bool
	Side    body.Side

	// Intersection is nil unless the probe computes geometry.
	Intersection *collide.Intersection
}

// Probe is a named collision check run against a scene.
type Probe interface {
	// ID returns a unique identifier (e.g., "aabb", "rays").
	ID() string

	// Title returns a human-readable description.
	Title() string

	// Run evaluates the scene and returns one result per pair examined.
	// It must not modify the scene.
	Run(s *scene.Scene) []Result
}

// Info contains metadata about a registered probe.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a probe.
type Factory func() Probe

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a probe factory to the registry.
// Typically called from a probe's init() function.
// Panics if a probe with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: probe %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered probes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// IDs returns the registered probe IDs, sorted.
func IDs() []string {
	infos := List()
	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
	}
	return ids
}

// Create instantiates a probe by its ID.
func Create(id string) (Probe, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProbe, id)
	}
	return f(), nil
}

// Exists checks if a probe with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

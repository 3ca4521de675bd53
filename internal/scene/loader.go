package scene

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Parse decodes and validates a scene. If the document has no id, it is
// derived from filePath's base name.
func Parse(data []byte, filePath string) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: failed to parse %s: %w", filePath, err)
	}
	if s.ID == "" && filePath != "" {
		base := filepath.Base(filePath)
		s.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load finds a scene by ID.
// Search order: customPath -> dir -> ~/.notsure/scenes/<id>.yaml -> ./scenes/<id>.yaml -> built-in
//
// Within dir, <id>.yaml and <id>.yml are tried first, then every scene under
// dir is scanned for a matching id field. An empty dir is skipped.
func Load(customPath, dir, id string) (*Scene, error) {
	// Try custom path first
	if customPath != "" {
		return loadFile(customPath)
	}

	if dir != "" {
		if s, ok := findInDir(dir, id); ok {
			return s, nil
		}
	}

	candidates := []string{filepath.Join("scenes", id+".yaml")}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append([]string{filepath.Join(home, ".notsure", "scenes", id+".yaml")}, candidates...)
	}
	for _, p := range candidates {
		if s, err := loadFile(p); err == nil {
			return s, nil
		}
	}

	return Builtin(id)
}

func findInDir(dir, id string) (*Scene, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		if s, err := loadFile(filepath.Join(dir, id+ext)); err == nil && s.ID == id {
			return s, true
		}
	}

	scenes, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, false
	}
	for _, s := range scenes {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Builtin returns the embedded scene with the given ID.
func Builtin(id string) (*Scene, error) {
	data, err := defaults.ReadFile(path.Join("defaults", id+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return nil, fmt.Errorf("scene: cannot read built-in %q: %w", id, err)
	}
	return Parse(data, id+".yaml")
}

// BuiltinIDs lists the embedded scene IDs in sorted order.
func BuiltinIDs() []string {
	entries, err := defaults.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(ids)
	return ids
}

// IDs returns the IDs of scenes in order.
func IDs(scenes []*Scene) []string {
	ids := make([]string, 0, len(scenes))
	for _, s := range scenes {
		ids = append(ids, s.ID)
	}
	return ids
}

func loadFile(p string) (*Scene, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("scene: failed to read %s: %w", p, err)
	}
	s, err := Parse(data, p)
	if err != nil {
		return nil, err
	}
	s.FilePath = p
	return s, nil
}

// Loader loads every scene under a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new scene loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans Root for .yaml/.yml files. Invalid files are
// skipped. Results are sorted by ID.
func (l *Loader) LoadAll() ([]*Scene, error) {
	var scenes []*Scene

	err := filepath.WalkDir(l.Root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(p)) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		s, err := loadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}
		scenes = append(scenes, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scene: cannot scan %s: %w", l.Root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes, nil
}

// All returns the built-in scenes followed by any extra ones found under
// dir. A scene in dir with a built-in ID replaces the built-in in place,
// matching Load. An empty dir returns only built-ins.
func All(dir string) ([]*Scene, error) {
	var out []*Scene
	index := make(map[string]int)

	for _, id := range BuiltinIDs() {
		s, err := Builtin(id)
		if err != nil {
			return nil, err
		}
		index[id] = len(out)
		out = append(out, s)
	}

	if dir == "" {
		return out, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return out, nil
	}

	extra, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	for _, s := range extra {
		if i, ok := index[s.ID]; ok {
			out[i] = s
			continue
		}
		index[s.ID] = len(out)
		out = append(out, s)
	}
	return out, nil
}

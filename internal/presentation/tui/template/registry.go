package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Registry holds the templates known to a Factory.
type Registry struct {
	templates map[ID]Template
}

// NewRegistry returns a registry preloaded with the built-in templates.
func NewRegistry() (*Registry, error) {
	r := &Registry{templates: make(map[ID]Template)}
	if _, err := r.loadFS(defaults, "defaults"); err != nil {
		return nil, fmt.Errorf("load built-in templates: %w", err)
	}
	return r, nil
}

// Register adds or replaces a template.
func (r *Registry) Register(t Template) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.templates[t.ID] = t
	return nil
}

// Lookup returns the template registered under id.
func (r *Registry) Lookup(id ID) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// LoadDir registers every *.yaml / *.yml file in dir and returns how many
// were loaded. Templates loaded later override earlier ones with the same
// id, built-ins included. A missing directory is not an error.
func (r *Registry) LoadDir(dir string) (int, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}
	n, err := r.loadFS(os.DirFS(dir), ".")
	if err != nil {
		return 0, fmt.Errorf("load templates from %s: %w", dir, err)
	}
	return n, nil
}

func (r *Registry) loadFS(fsys fs.FS, root string) (int, error) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return 0, err
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := fs.ReadFile(fsys, filepath.ToSlash(filepath.Join(root, entry.Name())))
		if err != nil {
			return loaded, err
		}
		t, err := Parse(bytes.NewReader(data))
		if err != nil {
			return loaded, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		r.templates[t.ID] = t
		loaded++
	}
	return loaded, nil
}

// Package hmr maintains the module graph used to find the units affected by a change.
package hmr

import (
	"encoding/json"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"
)

// ErrInvalidMetafile is returned when a bundler metafile cannot be decoded.
var ErrInvalidMetafile = zerr.New("invalid bundler metafile")

type metafile struct {
	Inputs map[string]metafileInput `json:"inputs"`
}

type metafileInput struct {
	Imports []metafileImport `json:"imports"`
}

type metafileImport struct {
	Path     string `json:"path"`
	External bool   `json:"external"`
}

// Graph is a reverse import graph. Paths are absolute.
type Graph struct {
	root string

	mu        sync.RWMutex
	importers map[string]map[string]struct{}
	modules   map[string]struct{}
}

// NewGraph creates an empty graph resolving metafile paths against root,
// the bundler's working directory.
func NewGraph(root string) *Graph {
	return &Graph{
		root:      root,
		importers: make(map[string]map[string]struct{}),
		modules:   make(map[string]struct{}),
	}
}

// Update replaces the graph with the imports recorded in a bundler metafile.
func (g *Graph) Update(raw string) error {
	var meta metafile
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return zerr.Wrap(err, ErrInvalidMetafile.Error())
	}

	importers := make(map[string]map[string]struct{})
	modules := make(map[string]struct{}, len(meta.Inputs))
	for input, info := range meta.Inputs {
		from, ok := g.resolve(input)
		if !ok {
			continue
		}
		modules[from] = struct{}{}
		for _, imp := range info.Imports {
			if imp.External {
				continue
			}
			to, ok := g.resolve(imp.Path)
			if !ok {
				continue
			}
			if importers[to] == nil {
				importers[to] = make(map[string]struct{})
			}
			importers[to][from] = struct{}{}
		}
	}

	g.mu.Lock()
	g.importers = importers
	g.modules = modules
	g.mu.Unlock()
	return nil
}

// resolve maps a metafile path to an absolute path. Virtual modules such as
// "<stdin>" or namespaced paths are not files and are dropped.
func (g *Graph) resolve(p string) (string, bool) {
	if p == "" || strings.HasPrefix(p, "<") || (strings.Contains(p, ":") && !filepath.IsAbs(p)) {
		return "", false
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), true
	}
	return filepath.Join(g.root, filepath.FromSlash(p)), true
}

// Contains reports whether path was part of the last build.
func (g *Graph) Contains(path string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.modules[filepath.Clean(path)]
	return ok
}

// Dependents returns path and every module importing it directly or transitively, sorted.
func (g *Graph) Dependents(path string) []string {
	path = filepath.Clean(path)

	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := map[string]struct{}{path: {}}
	queue := []string{path}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for importer := range g.importers[current] {
			if _, ok := seen[importer]; ok {
				continue
			}
			seen[importer] = struct{}{}
			queue = append(queue, importer)
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of modules in the graph.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.modules)
}

package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands entry point patterns into concrete file paths using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveEntryPoints resolves the given patterns, relative to root unless absolute, into a
// sorted list of unique absolute paths. A pattern matching nothing is an error.
func (r *Resolver) ResolveEntryPoints(patterns []string, root string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, domain.ErrNoEntryPoints
	}

	uniquePaths := make(map[string]bool)

	for _, pattern := range patterns {
		path := pattern
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}

		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "path", path)
		}

		for _, match := range matches {
			uniquePaths[filepath.Clean(match)] = true
		}
	}

	result := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		result = append(result, path)
	}
	sort.Strings(result)

	return result, nil
}

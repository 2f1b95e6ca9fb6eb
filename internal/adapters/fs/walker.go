// Package fs provides file system adapters for locating transform inputs.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/domx/internal/core/domain"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root, skipping VCS metadata, installed packages and
// directories matching one of ignores. Yielded paths include root.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.skipDir(path, d.Name(), ignores) {
					return filepath.SkipDir
				}
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

// EligibleFiles yields the files below root accepted by filter, skipping the same
// directories as WalkFiles.
func (w *Walker) EligibleFiles(root string, filter domain.ExtensionFilter, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root, ignores) {
			if !filter.Match(path) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// skipDir reports whether the directory should not be descended into.
// An ignore entry matches either the directory name or its absolute path.
func (w *Walker) skipDir(path, name string, ignores []string) bool {
	switch name {
	case ".git", ".jj", domain.NodeModulesDirName:
		return true
	}

	for _, ignore := range ignores {
		if filepath.IsAbs(ignore) {
			if filepath.Clean(ignore) == path {
				return true
			}
			continue
		}
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}

	return false
}

package domain

import (
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultExtensions are the eligible extensions when none are configured.
var DefaultExtensions = []string{".tsx"}

// ExtensionFilter is the eligibility predicate for transform units.
// A unit is eligible when its identity ends in one of the extensions.
type ExtensionFilter struct {
	extensions []string
}

// NewExtensionFilter validates the extensions and returns a filter matching them.
// An empty list selects DefaultExtensions.
func NewExtensionFilter(extensions []string) (ExtensionFilter, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return ExtensionFilter{}, zerr.With(ErrInvalidExtension, "extension", ext)
		}
		if !slices.Contains(exts, ext) {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return ExtensionFilter{extensions: exts}, nil
}

// Match reports whether identity is eligible. Extensions may span several dots,
// as in ".view.tsx", and agree with Pattern.
func (f ExtensionFilter) Match(identity string) bool {
	return slices.ContainsFunc(f.extensions, func(ext string) bool {
		return strings.HasSuffix(identity, ext)
	})
}

// Extensions returns a copy of the eligible extensions.
func (f ExtensionFilter) Extensions() []string {
	return slices.Clone(f.extensions)
}

// Pattern returns a Go regular expression matching eligible paths, suitable for bundler
// plugin filters.
func (f ExtensionFilter) Pattern() string {
	quoted := make([]string, len(f.extensions))
	for i, ext := range f.extensions {
		quoted[i] = regexp.QuoteMeta(ext)
	}
	return `(` + strings.Join(quoted, "|") + `)$`
}

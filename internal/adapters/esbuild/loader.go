package esbuild

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.TransformerLoader.
type Loader struct {
	root string
	opts domain.TransformerOptions
}

// NewLoader creates a loader resolving runtime packages below root.
func NewLoader(root string, opts domain.TransformerOptions) *Loader {
	return &Loader{root: root, opts: opts}
}

type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Load returns a transformer for the configured import source.
// With verification enabled the runtime package must be installed in node_modules.
func (l *Loader) Load(ctx context.Context) (ports.Transformer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := strings.TrimSpace(l.opts.ImportSource)
	if source == "" {
		return nil, domain.ErrMissingImportSource
	}

	var version string
	if l.opts.Verify {
		manifest, err := l.readManifest(packageName(source))
		if err != nil {
			return nil, err
		}
		version = manifest.Version
	}

	return NewTransformer(source, version), nil
}

func (l *Loader) readManifest(pkg string) (*packageManifest, error) {
	path := filepath.Join(l.root, domain.NodeModulesDirName, filepath.FromSlash(pkg), "package.json")

	//nolint:gosec // path is built from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrTransformerModuleNotFound, "package", pkg)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransformerModuleInvalid.Error()), "path", path)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransformerModuleInvalid.Error()), "path", path)
	}
	if manifest.Name != "" && manifest.Name != pkg {
		return nil, zerr.With(zerr.With(domain.ErrTransformerModuleInvalid, "path", path), "name", manifest.Name)
	}
	return &manifest, nil
}

// packageName returns the package part of an import specifier:
// "solid-js/h" is "solid-js" and "@scope/pkg/jsx" is "@scope/pkg".
func packageName(specifier string) string {
	parts := strings.Split(specifier, "/")
	if strings.HasPrefix(specifier, "@") && len(parts) > 1 {
		return parts[0] + "/" + parts[1]
	}
	return parts[0]
}

package esbuild

import (
	"context"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/zerr"
)

// Transformer implements ports.Transformer with esbuild's automatic JSX runtime.
// JSX elements become calls into the runtime of the configured import source.
type Transformer struct {
	importSource string
	version      string
	target       api.Target
}

// NewTransformer creates a transformer for importSource.
// version is informational and may be empty.
func NewTransformer(importSource, version string) *Transformer {
	return &Transformer{
		importSource: importSource,
		version:      version,
		target:       api.ESNext,
	}
}

// runtime names the JSX runtime package and, when verified, its installed version.
func (t *Transformer) runtime() string {
	if t.version == "" {
		return t.importSource
	}
	return t.importSource + "@" + t.version
}

// Transform rewrites the JSX in source.
func (t *Transformer) Transform(ctx context.Context, identity, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:          api.LoaderJSX,
		Target:          t.target,
		JSX:             api.JSXAutomatic,
		JSXImportSource: t.importSource,
		Sourcefile:      identity,
		LogLevel:        api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", zerr.With(messagesError(identity, result.Errors), "runtime", t.runtime())
	}
	return string(result.Code), nil
}

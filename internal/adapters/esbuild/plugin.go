package esbuild

import (
	"context"
	"os"
	"path/filepath"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

// PluginName is the name reported by esbuild for messages from the plugin.
const PluginName = "domx"

// UnitTransformer transforms single units. It is satisfied by *transform.Controller.
type UnitTransformer interface {
	TransformUnit(ctx context.Context, content, identity string) (domain.TransformResult, error)
}

// PluginOptions configures NewPlugin.
type PluginOptions struct {
	// Filter selects the files handed to the transformer.
	Filter domain.ExtensionFilter
	// OnEnd is called after every build with its result. It may be nil.
	OnEnd func(result *api.BuildResult)
}

// NewPlugin returns an esbuild plugin routing eligible files through units.
// Skipped units fall through to esbuild's own loaders.
func NewPlugin(ctx context.Context, units UnitTransformer, opts PluginOptions) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: opts.Filter.Pattern(), Namespace: "file"},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					return load(ctx, units, args.Path)
				},
			)

			if opts.OnEnd != nil {
				build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
					opts.OnEnd(result)
					return api.OnEndResult{}, nil
				})
			}
		},
	}
}

func load(ctx context.Context, units UnitTransformer, path string) (api.OnLoadResult, error) {
	identity := filepath.Clean(path)

	//nolint:gosec // path comes from esbuild's resolver
	data, err := os.ReadFile(identity)
	if err != nil {
		return api.OnLoadResult{}, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", identity)
	}

	res, err := units.TransformUnit(ctx, string(data), identity)
	if err != nil {
		return api.OnLoadResult{}, err
	}
	if res.Skipped {
		return api.OnLoadResult{}, nil
	}

	contents := res.Output
	return api.OnLoadResult{
		Contents:   &contents,
		Loader:     api.LoaderJS,
		ResolveDir: filepath.Dir(identity),
		PluginName: PluginName,
	}, nil
}

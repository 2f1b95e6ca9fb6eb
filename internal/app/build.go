package app

import (
	"context"
	"errors"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/adapters/esbuild"
	"go.trai.ch/domx/internal/core/domain"
)

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	SessionOptions
	// EntryPoints override the configured entry point patterns.
	EntryPoints []string
	// Outdir overrides the configured output directory. Relative paths are resolved
	// against the working directory.
	Outdir string
	Minify bool
	// Metafile writes the esbuild metafile to this path when non-empty.
	Metafile string
}

// Build bundles the entry points once, transforming eligible units on the way.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	s, err := a.openSession(opts.SessionOptions, domain.ModeProduction, true)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	patterns := opts.EntryPoints
	if len(patterns) == 0 {
		patterns = s.cfg.EntryPoints
	}
	entryPoints, err := a.resolver.ResolveEntryPoints(patterns, s.cfg.Root)
	if err != nil {
		return err
	}

	outdir := s.cfg.Outdir
	if opts.Outdir != "" {
		outdir = resolvePath(s.cwd, opts.Outdir)
	}

	buildOpts, err := s.bundleOptions(ctx, entryPoints, outdir, nil)
	if err != nil {
		return err
	}
	buildOpts.Write = true
	if opts.Minify {
		buildOpts.MinifyWhitespace = true
		buildOpts.MinifyIdentifiers = true
		buildOpts.MinifySyntax = true
	}

	start := time.Now()
	result := api.Build(buildOpts)
	if err = esbuild.BuildError(result.Errors); err != nil {
		a.logger.Error(err)
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	if err = a.report(s, result, domain.BuildSummary{Duration: time.Since(start)}); err != nil {
		return err
	}

	a.logStats(s)
	if opts.Metafile != "" {
		return writeOutput(resolvePath(s.cwd, opts.Metafile), result.Metafile)
	}
	return nil
}

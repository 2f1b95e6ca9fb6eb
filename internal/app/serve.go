package app

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/adapters/esbuild"
	"go.trai.ch/domx/internal/adapters/hmr"
	"go.trai.ch/domx/internal/adapters/metrics"
	"go.trai.ch/domx/internal/adapters/watcher"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

// liveReloadBanner reloads the page whenever the development server finishes a rebuild.
const liveReloadBanner = `new EventSource("/esbuild").addEventListener("change", () => location.reload());`

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	SessionOptions
	// Host and Port override the configured listen address when non-zero.
	Host string
	Port int
	// MetricsPort overrides the configured metrics port when non-zero.
	MetricsPort int
	// Ready is called with the server URL once it accepts connections. It may be nil.
	Ready func(url string)
}

// Serve runs the development server until ctx is done. Changed inputs are invalidated
// in the transform controller before the bundle is rebuilt.
//
//nolint:cyclop,funlen // orchestration function
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	s, err := a.openSession(opts.SessionOptions, domain.ModeDevelopment, true)
	if err != nil {
		return err
	}
	defer s.close(ctx)
	cfg := s.cfg

	entryPoints, err := a.resolver.ResolveEntryPoints(cfg.EntryPoints, cfg.Root)
	if err != nil {
		return err
	}

	host, port := cfg.Serve.Host, cfg.Serve.Port
	if opts.Host != "" {
		host = opts.Host
	}
	if opts.Port != 0 {
		port = opts.Port
	}
	metricsPort := cfg.Serve.MetricsPort
	if opts.MetricsPort != 0 {
		metricsPort = opts.MetricsPort
	}

	outdir := cfg.Outdir
	if cfg.Serve.Servedir != "" {
		outdir = cfg.Serve.Servedir
	}

	graph := hmr.NewGraph(cfg.Root)
	onEnd := func(result *api.BuildResult) {
		if len(result.Errors) > 0 {
			return
		}
		if err := graph.Update(result.Metafile); err != nil {
			a.logger.Error(err)
		}
	}

	buildOpts, err := s.bundleOptions(ctx, entryPoints, outdir, onEnd)
	if err != nil {
		return err
	}
	buildOpts.Write = false
	buildOpts.Banner = map[string]string{"js": liveReloadBanner}

	bctx, ctxErr := api.Context(buildOpts)
	if ctxErr != nil {
		if err := esbuild.BuildError(ctxErr.Errors); err != nil {
			return zerr.Wrap(err, domain.ErrServeFailed.Error())
		}
		return domain.ErrServeFailed
	}
	defer bctx.Dispose()

	a.rebuild(s, bctx, false)

	served, err := bctx.Serve(api.ServeOptions{
		Host:     host,
		Port:     port,
		Servedir: cfg.Serve.Servedir,
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServeFailed.Error()), "port", port)
	}
	url := fmt.Sprintf("http://%s/", net.JoinHostPort(host, strconv.Itoa(int(served.Port))))
	a.logger.Info("serving " + url)

	if metricsPort != 0 {
		addr, err := metrics.Expose(ctx, net.JoinHostPort(host, strconv.Itoa(metricsPort)), a.logger, s.collector)
		if err != nil {
			return err
		}
		a.logger.Info("metrics on http://" + addr + metrics.Path)
	}

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w.Ignore(cfg.Outdir, outdir)
	if err = w.Start(ctx, cfg.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer func() { _ = w.Stop() }()

	for path := range a.walker.EligibleFiles(cfg.Root, cfg.Filter, []string{cfg.Outdir, outdir}) {
		_ = a.contents.Observe(path)
	}
	if s.verbose {
		a.logger.Info(fmt.Sprintf("watching %d file(s), %d module(s) in the graph", a.contents.Len(), graph.Len()))
	}

	stale := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(cfg.Debounce, func(paths []string) {
		if a.applyChanges(s, graph, paths) {
			select {
			case stale <- struct{}{}:
			default:
			}
		}
	})

	go func() {
		for event := range w.Events() {
			if cfg.Filter.Match(event.Path) || graph.Contains(event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	if opts.Ready != nil {
		opts.Ready(url)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-stale:
			a.rebuild(s, bctx, true)
		}
	}
}

// rebuild runs one incremental build. Failures are logged and the server keeps running.
func (a *App) rebuild(s *session, bctx api.BuildContext, incremental bool) {
	start := time.Now()
	result := bctx.Rebuild()
	if err := esbuild.BuildError(result.Errors); err != nil {
		a.logger.Error(zerr.Wrap(err, "rebuild failed"))
		return
	}

	summary := domain.BuildSummary{Duration: time.Since(start), Rebuild: incremental}
	if err := a.report(s, result, summary); err != nil {
		a.logger.Error(err)
	}
}

// applyChanges notifies the controller about changed and removed inputs.
// It reports whether the bundle is stale.
func (a *App) applyChanges(s *session, graph *hmr.Graph, paths []string) bool {
	stale := false
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, iofs.ErrNotExist) {
			a.contents.Forget(path)
			s.controller.OnInputRemoved(path)
			stale = true
			continue
		}

		changed, err := a.contents.Changed(path)
		if err != nil {
			a.logger.Error(err)
			continue
		}
		if !changed {
			continue
		}

		stale = true
		units := s.controller.OnInputChanged(path, graph.Dependents(path))
		if s.verbose {
			a.logger.Info(fmt.Sprintf("%s changed, %d unit(s) invalidated", relPath(s.cfg.Root, path), len(units)))
		}
	}
	return stale
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

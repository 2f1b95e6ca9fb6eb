package app

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/domx/internal/adapters/detector"
	"go.trai.ch/domx/internal/adapters/esbuild"
	"go.trai.ch/domx/internal/adapters/linear"
	"go.trai.ch/domx/internal/adapters/metrics"
	"go.trai.ch/domx/internal/adapters/telemetry"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/domx/internal/engine/transform"
	"go.trai.ch/zerr"
)

// tracerName is the instrumentation scope of transform spans.
const tracerName = "domx"

// session is the state of one command invocation: the resolved configuration and a
// controller wired to the reporter, the tracer and the metrics collector.
type session struct {
	cwd        string
	cfg        *domain.Config
	controller *transform.Controller
	reporter   ports.Reporter
	collector  *metrics.Collector
	provider   *sdktrace.TracerProvider
	verbose    bool
	stats      bool
}

// jsonSwitcher is implemented by loggers that can emit JSON lines.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// diagnostics fans a diagnostic out to several sinks.
type diagnostics []ports.DiagnosticsSink

func (d diagnostics) Record(ctx context.Context, diagnostic domain.Diagnostic) {
	for _, sink := range d {
		sink.Record(ctx, diagnostic)
	}
}

// openSession loads the configuration and builds the transform controller.
// bundled sessions print ESM and leave the output format to the bundler.
//
//nolint:cyclop // one step per session concern
func (a *App) openSession(opts SessionOptions, commandDefault domain.Mode, bundled bool) (*session, error) {
	format := detector.ResolveLogFormat(detector.DetectEnvironment(), opts.LogFormat)
	if sw, ok := a.logger.(jsonSwitcher); ok {
		sw.SetJSON(format == detector.FormatJSON)
	}

	cwd, err := opts.dir()
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	mode, err := detector.ResolveMode(opts.Mode, commandDefault)
	if err != nil {
		return nil, err
	}

	if opts.ProgramScope != "" {
		if cfg.ProgramScope, err = domain.ParseProgramScope(opts.ProgramScope); err != nil {
			return nil, err
		}
	}
	if opts.Caching != nil {
		cfg.Caching = opts.Caching
	}

	if err = esbuild.ValidateCompilerOptions(cfg.CompilerOptions); err != nil {
		return nil, err
	}

	module := cfg.CompilerOptions.Module
	if bundled {
		module = "esm"
	}
	printer, err := esbuild.NewPrinter(module)
	if err != nil {
		return nil, err
	}

	reporter := linear.NewRenderer(a.stderr, cfg.Root, opts.Verbose)
	provider := telemetry.Setup(telemetry.NewBridge(reporter))
	collector := metrics.NewCollector(nil)

	controller := transform.NewController(
		esbuild.NewLoader(cfg.Root, cfg.Transformer),
		esbuild.NewBuilder(),
		printer,
		diagnostics{telemetry.NewSink(tracerName), collector},
		transform.Settings{
			Filter:          cfg.Filter,
			CompilerOptions: cfg.CompilerOptions,
			ProgramScope:    cfg.ProgramScope,
		},
	)
	controller.Configure(mode, cfg.Caching)
	collector.SetSource(controller)

	if opts.Verbose {
		caching := "off"
		if controller.CachingEnabled() {
			caching = "on"
		}
		a.logger.Info(fmt.Sprintf("%s mode, caching %s, program scope %s", controller.Mode(), caching, cfg.ProgramScope))
	}

	return &session{
		cwd:        cwd,
		cfg:        cfg,
		controller: controller,
		reporter:   reporter,
		collector:  collector,
		provider:   provider,
		verbose:    opts.Verbose,
		stats:      opts.Stats,
	}, nil
}

// logStats logs the cache counters of the session when they were asked for.
func (a *App) logStats(s *session) {
	if !s.stats {
		return
	}
	st := s.controller.Stats()
	a.logger.Info(fmt.Sprintf(
		"cache: %d transformer load(s), %d program build(s), %d transformer hit(s), %d program hit(s), %d unit(s) tracked",
		st.Loads, st.ProgramBuilds, st.TransformerHits, st.ProgramHits, st.Records,
	))
}

// close flushes pending spans to the reporter.
func (s *session) close(ctx context.Context) {
	_ = s.provider.Shutdown(context.WithoutCancel(ctx))
}

// bundleOptions returns the esbuild options shared by build and serve.
func (s *session) bundleOptions(
	ctx context.Context, entryPoints []string, outdir string, onEnd func(*api.BuildResult),
) (api.BuildOptions, error) {
	target, err := esbuild.ParseTarget(s.cfg.CompilerOptions.Target)
	if err != nil {
		return api.BuildOptions{}, err
	}
	format, err := esbuild.ParseFormat(s.cfg.CompilerOptions.Module)
	if err != nil {
		return api.BuildOptions{}, err
	}

	return api.BuildOptions{
		EntryPoints:     entryPoints,
		Outdir:          outdir,
		AbsWorkingDir:   s.cfg.Root,
		Bundle:          true,
		Metafile:        true,
		Format:          format,
		Target:          target,
		Platform:        api.PlatformBrowser,
		JSX:             api.JSXAutomatic,
		JSXImportSource: s.cfg.Transformer.ImportSource,
		LogLevel:        api.LogLevelSilent,
		Plugins: []api.Plugin{
			esbuild.NewPlugin(ctx, s.controller, esbuild.PluginOptions{Filter: s.cfg.Filter, OnEnd: onEnd}),
		},
	}, nil
}

// report logs warnings of a finished build and hands its summary to the reporter.
func (a *App) report(s *session, result api.BuildResult, summary domain.BuildSummary) error {
	for _, w := range result.Warnings {
		a.logger.Warn(esbuild.FormatMessage(w))
	}

	outputs, err := esbuild.Outputs(s.cfg.Root, result.Metafile)
	if err != nil {
		return err
	}
	summary.Outputs = outputs
	summary.Warnings = len(result.Warnings)
	s.reporter.OnBuild(summary)
	return nil
}

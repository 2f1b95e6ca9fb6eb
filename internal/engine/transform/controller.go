// Package transform implements the transform cache controller: it decides when the loaded
// transformer and the compiled programs are reused or rebuilt, tracks which units were
// already transformed in the session, and applies change notifications.
package transform

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
)

const (
	transformerKey    = "transformer"
	sharedProgramKey  = "\x00shared"
	maxRaceRetries    = 1
	unsharedSignature = 0
)

// errGenerationMoved signals that the unit was invalidated while it was being transformed.
var errGenerationMoved = errors.New("generation moved")

// Settings are the fixed parameters of a controller.
type Settings struct {
	// Filter is the eligibility predicate owned by the host.
	Filter domain.ExtensionFilter
	// CompilerOptions are passed unchanged to every program build.
	CompilerOptions domain.CompilerOptions
	// ProgramScope selects program reuse when caching is enabled.
	ProgramScope domain.ProgramScope
}

// Controller owns the transformer cache, the program cache and the transform ledger.
// It is safe for concurrent use.
type Controller struct {
	loader   ports.TransformerLoader
	builder  ports.ProgramBuilder
	printer  ports.Printer
	sink     ports.DiagnosticsSink
	settings Settings
	now      func() time.Time

	mu      sync.RWMutex
	mode    domain.Mode
	caching bool

	transformers *resourceCache[ports.Transformer]
	programs     *resourceCache[ports.Program]
	ledger       *ledger

	loads           atomic.Int64
	programBuilds   atomic.Int64
	transformerHits atomic.Int64
	programHits     atomic.Int64
}

// NewController creates a controller in development mode with caching disabled.
// sink may be nil.
func NewController(
	loader ports.TransformerLoader,
	builder ports.ProgramBuilder,
	printer ports.Printer,
	sink ports.DiagnosticsSink,
	settings Settings,
) *Controller {
	return &Controller{
		loader:       loader,
		builder:      builder,
		printer:      printer,
		sink:         sink,
		settings:     settings,
		now:          time.Now,
		mode:         domain.ModeDevelopment,
		transformers: newResourceCache[ports.Transformer](),
		programs:     newResourceCache[ports.Program](),
		ledger:       newLedger(),
	}
}

// Configure sets the session mode. Caching follows override when it is non-nil and the
// mode default otherwise. Development mode without caching drops every cached resource.
func (c *Controller) Configure(mode domain.Mode, override *bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.mode = mode
	c.caching = mode.DefaultCaching()
	if override != nil {
		c.caching = *override
	}

	if mode == domain.ModeDevelopment && !c.caching {
		c.transformers.clear()
		c.programs.clear()
	}
}

// Mode returns the configured session mode.
func (c *Controller) Mode() domain.Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// CachingEnabled reports whether resources are reused across transforms.
func (c *Controller) CachingEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.caching
}

// Eligible reports whether identity is handled by the controller.
func (c *Controller) Eligible(identity string) bool {
	return c.settings.Filter.Match(identity)
}

// TransformUnit transforms one unit. Ineligible identities return a skipped result.
// Failures are *domain.UnitError values and never carry partial output.
func (c *Controller) TransformUnit(ctx context.Context, content, identity string) (domain.TransformResult, error) {
	if !c.Eligible(identity) {
		return domain.TransformResult{Skipped: true}, nil
	}

	for attempt := 0; ; attempt++ {
		result, err := c.transformOnce(ctx, content, identity)
		if !errors.Is(err, errGenerationMoved) {
			return result, err
		}
		if attempt >= maxRaceRetries {
			return domain.TransformResult{}, domain.NewUnitError(identity, domain.PhaseInvalidate, nil)
		}
	}
}

func (c *Controller) transformOnce(ctx context.Context, content, identity string) (domain.TransformResult, error) {
	start := c.now()
	caching := c.CachingEnabled()
	gen := c.ledger.generation(identity)

	transformer, err := c.resolveTransformer(ctx, caching)
	if err != nil {
		return domain.TransformResult{}, domain.NewUnitError(identity, domain.PhaseLoad, err)
	}

	program, err := c.resolveProgram(ctx, caching, content, identity)
	if err != nil {
		return domain.TransformResult{}, domain.NewUnitError(identity, domain.PhaseBuild, err)
	}

	output, err := c.printer.Print(ctx, program, transformer, content, identity)
	if err != nil {
		return domain.TransformResult{}, domain.NewUnitError(identity, domain.PhaseTransform, err)
	}

	status, ok := c.ledger.commit(identity, gen, caching)
	if !ok {
		return domain.TransformResult{}, errGenerationMoved
	}

	if c.sink != nil {
		c.sink.Record(ctx, domain.Diagnostic{
			Identity: identity,
			Duration: c.now().Sub(start),
			Status:   status,
		})
	}

	return domain.TransformResult{Output: output, Status: status}, nil
}

// Shared loads and builds run detached from the caller's cancellation: the first caller
// leads the flight and later callers wait on its result.
func (c *Controller) resolveTransformer(ctx context.Context, caching bool) (ports.Transformer, error) {
	load := func(ctx context.Context) func() (ports.Transformer, error) {
		return func() (ports.Transformer, error) {
			c.loads.Add(1)
			return c.loader.Load(ctx)
		}
	}
	if !caching {
		return load(ctx)()
	}

	transformer, hit, err := c.transformers.get(transformerKey, unsharedSignature, load(context.WithoutCancel(ctx)))
	if hit {
		c.transformerHits.Add(1)
	}
	return transformer, err
}

func (c *Controller) resolveProgram(ctx context.Context, caching bool, content, identity string) (ports.Program, error) {
	build := func(ctx context.Context) func() (ports.Program, error) {
		return func() (ports.Program, error) {
			c.programBuilds.Add(1)
			return c.builder.Build(ctx, c.settings.CompilerOptions, identity, content)
		}
	}
	if !caching || c.settings.ProgramScope == domain.ScopeUnit {
		return build(ctx)()
	}
	shared := build(context.WithoutCancel(ctx))

	var (
		program ports.Program
		hit     bool
		err     error
	)
	if c.settings.ProgramScope == domain.ScopeShared {
		program, hit, err = c.programs.get(sharedProgramKey, unsharedSignature, shared)
	} else {
		program, hit, err = c.programs.get(identity, xxhash.Sum64String(content), shared)
	}
	if hit {
		c.programHits.Add(1)
	}
	return program, err
}

// OnInputChanged applies a change notification for identity and returns the units the host
// should mark stale: dependents when given, identity alone otherwise.
// Ineligible identities are ignored and return nil. The transformer cache is never touched.
func (c *Controller) OnInputChanged(identity string, dependents []string) []string {
	if !c.Eligible(identity) {
		return nil
	}

	c.ledger.invalidate(identity)
	c.dropProgram(identity)

	if len(dependents) == 0 {
		return []string{identity}
	}
	return slices.Clone(dependents)
}

// OnInputRemoved forgets identity after the host reports it deleted.
func (c *Controller) OnInputRemoved(identity string) {
	if !c.Eligible(identity) {
		return
	}

	// Bump first so a transform racing with the removal is detected at commit.
	c.ledger.invalidate(identity)
	c.ledger.remove(identity)
	c.dropProgram(identity)
}

func (c *Controller) dropProgram(identity string) {
	switch c.settings.ProgramScope {
	case domain.ScopeShared:
		c.programs.invalidate(sharedProgramKey)
	case domain.ScopeFile:
		c.programs.invalidate(identity)
	case domain.ScopeUnit:
	}
}

// Record returns the ledger entry of identity.
func (c *Controller) Record(identity string) (domain.TransformRecord, bool) {
	return c.ledger.record(identity)
}

// Stats returns a snapshot of the controller counters.
func (c *Controller) Stats() domain.CacheStats {
	return domain.CacheStats{
		Loads:           c.loads.Load(),
		ProgramBuilds:   c.programBuilds.Load(),
		TransformerHits: c.transformerHits.Load(),
		ProgramHits:     c.programHits.Load(),
		Records:         c.ledger.len(),
		Programs:        c.programs.len(),
	}
}

package esbuild

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
)

// Builder implements ports.ProgramBuilder.
type Builder struct{}

// NewBuilder creates a program builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build validates opts and returns a program for them.
// identity and content are not compiled eagerly; the program emits on demand.
func (b *Builder) Build(ctx context.Context, opts domain.CompilerOptions, _, _ string) (ports.Program, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateCompilerOptions(opts); err != nil {
		return nil, err
	}

	target, _ := ParseTarget(opts.Target)
	return &Program{
		target:   target,
		tsconfig: renderTsconfig(opts),
		emitted:  make(map[string]emission),
	}, nil
}

// Program strips TypeScript syntax and keeps JSX for the transformer.
// Emitted text is memoised per identity for the content it was produced from.
type Program struct {
	target   api.Target
	tsconfig string

	mu      sync.Mutex
	emitted map[string]emission
}

type emission struct {
	fingerprint uint64
	code        string
}

// Emit returns content with types removed and JSX preserved.
func (p *Program) Emit(ctx context.Context, identity, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fingerprint := xxhash.Sum64String(content)

	p.mu.Lock()
	if e, ok := p.emitted[identity]; ok && e.fingerprint == fingerprint {
		p.mu.Unlock()
		return e.code, nil
	}
	p.mu.Unlock()

	result := api.Transform(content, api.TransformOptions{
		Loader:      loaderFor(identity),
		Target:      p.target,
		JSX:         api.JSXPreserve,
		Sourcefile:  identity,
		TsconfigRaw: p.tsconfig,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		return "", messagesError(identity, result.Errors)
	}

	code := string(result.Code)

	p.mu.Lock()
	p.emitted[identity] = emission{fingerprint: fingerprint, code: code}
	p.mu.Unlock()

	return code, nil
}

// memoised returns the number of memoised emissions.
func (p *Program) memoised() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.emitted)
}

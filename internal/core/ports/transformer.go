// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/domx/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=transformer.go -destination=mocks/mock_transformer.go -package=mocks

// Transformer is a handle to the loaded JSX conversion logic.
// Handles are stateless and may be shared by concurrent transforms.
type Transformer interface {
	// Transform converts JSX-preserving source of identity into DOM runtime calls.
	Transform(ctx context.Context, identity, source string) (string, error)
}

// TransformerLoader loads the external transformer.
// The module to load is fixed by configuration.
type TransformerLoader interface {
	// Load returns a ready transformer handle or a load failure.
	Load(ctx context.Context) (Transformer, error)
}

// Program is compiled context for one or more units.
type Program interface {
	// Emit returns the source of identity with types removed and JSX preserved.
	// Implementations must return text consistent with content.
	Emit(ctx context.Context, identity, content string) (string, error)
}

// ProgramBuilder constructs programs from the fixed compiler options.
type ProgramBuilder interface {
	// Build returns a program able to emit identity. content is the unit's current source.
	Build(ctx context.Context, opts domain.CompilerOptions, identity, content string) (Program, error)
}

// Printer runs the external transform and print step for one unit.
type Printer interface {
	// Print transforms content through program and transformer and returns the printed output.
	Print(ctx context.Context, program Program, transformer Transformer, content, identity string) (string, error)
}

package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CompilerOptions configures the program builder. The value is resolved once at startup
// and passed unchanged to every build.
type CompilerOptions struct {
	// Target is the output language level, e.g. "es2020" or "esnext".
	Target string
	// Module is the module format: "esm", "cjs" or "iife".
	Module string
	// JSX is the JSX handling of the compiler. Only "preserve" is supported because the
	// transformer consumes the JSX.
	JSX string
	// Strict enables strict mode semantics in the emitted code.
	Strict bool
}

// DefaultCompilerOptions returns the options used when the configuration omits them.
func DefaultCompilerOptions() CompilerOptions {
	return CompilerOptions{
		Target: "es2020",
		Module: "esm",
		JSX:    "preserve",
		Strict: true,
	}
}

// ProgramScope selects how long a built program is reused.
type ProgramScope uint8

const (
	// ScopeFile keeps one program per identity while its content is unchanged.
	ScopeFile ProgramScope = iota
	// ScopeShared keeps one program for all identities until any eligible input changes.
	ScopeShared
	// ScopeUnit builds a new program for every transform.
	ScopeUnit
)

// String returns the configuration name of the scope.
func (s ProgramScope) String() string {
	switch s {
	case ScopeShared:
		return "shared"
	case ScopeUnit:
		return "unit"
	default:
		return "file"
	}
}

// ParseProgramScope converts a configuration value into a ProgramScope.
// The empty string selects ScopeFile.
func ParseProgramScope(s string) (ProgramScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "file":
		return ScopeFile, nil
	case "shared":
		return ScopeShared, nil
	case "unit":
		return ScopeUnit, nil
	default:
		return ScopeFile, zerr.With(ErrInvalidProgramScope, "scope", s)
	}
}

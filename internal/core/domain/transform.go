package domain

import (
	"fmt"
	"time"
)

// Status describes whether a unit was transformed for the first time in the session.
type Status uint8

const (
	// StatusFresh means the unit had not been transformed since the session started or
	// since it was last invalidated.
	StatusFresh Status = iota
	// StatusCached means the unit was transformed before and has not changed since.
	StatusCached
)

// String returns the status name used in diagnostics.
func (s Status) String() string {
	if s == StatusCached {
		return "cached"
	}
	return "fresh"
}

// TransformRecord is the per-identity bookkeeping kept by the transform controller.
type TransformRecord struct {
	// Identity is the stable key of the unit, normally a cleaned absolute path.
	Identity string
	// Seen is true once the unit was transformed with caching enabled.
	Seen bool
	// LastStatus is the status reported by the most recent successful transform.
	LastStatus Status
	// Generation is bumped on every invalidation of the identity.
	Generation uint64
}

// TransformResult is the outcome of transforming one unit.
type TransformResult struct {
	// Output is the transformed source text.
	Output string
	// SourceMap is always nil. Source maps are not produced.
	SourceMap *string
	// Status reports whether the unit was fresh or cached.
	Status Status
	// Skipped is set when the identity is not eligible. The host should pass the input through.
	Skipped bool
}

// Diagnostic is emitted to the diagnostics sink after each successful transform.
type Diagnostic struct {
	Identity string
	Duration time.Duration
	Status   Status
}

// Phase names the step of a transform in which a failure happened.
type Phase string

const (
	// PhaseLoad is the loading of the external transformer.
	PhaseLoad Phase = "load"
	// PhaseBuild is the construction of the program for a unit.
	PhaseBuild Phase = "build"
	// PhaseTransform is the external transform and print step.
	PhaseTransform Phase = "transform"
	// PhaseInvalidate is the generation check that detects concurrent invalidation.
	PhaseInvalidate Phase = "invalidate"
)

// sentinel returns the error sentinel matching the phase.
func (p Phase) sentinel() error {
	switch p {
	case PhaseLoad:
		return ErrLoadFailed
	case PhaseBuild:
		return ErrBuildFailed
	case PhaseInvalidate:
		return ErrInvalidationRace
	default:
		return ErrTransformFailed
	}
}

// UnitError is a failed transform of a single unit.
// It matches both the phase sentinel and the underlying cause with errors.Is.
type UnitError struct {
	Identity string
	Phase    Phase
	Err      error
}

// NewUnitError wraps err as a failure of identity during phase.
func NewUnitError(identity string, phase Phase, err error) *UnitError {
	return &UnitError{Identity: identity, Phase: phase, Err: err}
}

func (e *UnitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s phase: %s", e.Identity, e.Phase, e.Phase.sentinel())
	}
	return fmt.Sprintf("%s: %s phase: %s: %v", e.Identity, e.Phase, e.Phase.sentinel(), e.Err)
}

// Unwrap returns the phase sentinel and the cause.
func (e *UnitError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Phase.sentinel()}
	}
	return []error{e.Phase.sentinel(), e.Err}
}

package domain

import "time"

// OutputFile is a file written by a build.
type OutputFile struct {
	// Path is the absolute path of the written file.
	Path string
	// Size is the length of the file in bytes.
	Size int64
}

// BuildSummary describes a finished build or rebuild.
type BuildSummary struct {
	Outputs  []OutputFile
	Duration time.Duration
	Warnings int
	// Rebuild is set for incremental rebuilds of the development server.
	Rebuild bool
}

// CacheStats is a snapshot of the transform cache counters.
type CacheStats struct {
	// Loads counts transformer loads, successful or not.
	Loads int64
	// ProgramBuilds counts program constructions, successful or not.
	ProgramBuilds int64
	// TransformerHits counts transforms served by an already loaded transformer.
	TransformerHits int64
	// ProgramHits counts transforms served by an already built program.
	ProgramHits int64
	// Records is the number of identities in the ledger.
	Records int
	// Programs is the number of cached programs.
	Programs int
}

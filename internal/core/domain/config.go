package domain

import "time"

// DefaultDebounceWindow is the default time window for coalescing file events.
const DefaultDebounceWindow = 50 * time.Millisecond

// Config is the resolved project configuration.
type Config struct {
	// Root is the absolute project root. Relative paths are resolved against it.
	Root string
	// Path is the configuration file the values were read from. Empty when defaults are used.
	Path string
	// EntryPoints are patterns, relative to Root, of the bundle entry points.
	EntryPoints []string
	// Outdir is the absolute output directory of builds.
	Outdir string
	// Filter is the eligibility predicate for transform units.
	Filter ExtensionFilter
	// Caching overrides the mode default when non-nil.
	Caching *bool
	// ProgramScope selects program reuse.
	ProgramScope ProgramScope
	// CompilerOptions configures program construction.
	CompilerOptions CompilerOptions
	// Transformer configures the JSX transformer.
	Transformer TransformerOptions
	// Serve configures the development server.
	Serve ServeOptions
	// Debounce is the time window for coalescing file events.
	Debounce time.Duration
}

// TransformerOptions configures the JSX to DOM transformer.
type TransformerOptions struct {
	// ImportSource is the package providing the JSX runtime, e.g. "solid-js/h".
	ImportSource string
	// Verify checks that the runtime package is installed under node_modules when loading.
	Verify bool
}

// ServeOptions configures the development server.
type ServeOptions struct {
	Host     string
	Port     int
	Servedir string
	// MetricsPort exposes Prometheus metrics when non-zero.
	MetricsPort int
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig(root string) *Config {
	filter, _ := NewExtensionFilter(nil)
	return &Config{
		Root:            root,
		Outdir:          DefaultOutdir(root),
		Filter:          filter,
		ProgramScope:    ScopeFile,
		CompilerOptions: DefaultCompilerOptions(),
		Transformer: TransformerOptions{
			ImportSource: DefaultImportSource,
		},
		Serve: ServeOptions{
			Host: DefaultServeHost,
			Port: DefaultServePort,
		},
		Debounce: DefaultDebounceWindow,
	}
}

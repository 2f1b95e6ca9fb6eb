package domain

import "go.trai.ch/zerr"

var (
	// ErrLoadFailed is returned when the external transformer could not be loaded.
	ErrLoadFailed = zerr.New("failed to load transformer")

	// ErrBuildFailed is returned when a program could not be constructed for a unit.
	ErrBuildFailed = zerr.New("failed to build program")

	// ErrTransformFailed is returned when the external transform step rejects a unit.
	ErrTransformFailed = zerr.New("failed to transform unit")

	// ErrInvalidationRace is returned when a unit was invalidated twice while being transformed.
	ErrInvalidationRace = zerr.New("unit invalidated during transform")

	// ErrInvalidMode is returned when a session mode string is not recognized.
	ErrInvalidMode = zerr.New("invalid mode, expected 'development' or 'production'")

	// ErrInvalidProgramScope is returned when a program cache scope is not recognized.
	ErrInvalidProgramScope = zerr.New("invalid program scope, expected 'file', 'shared' or 'unit'")

	// ErrInvalidTarget is returned when the compiler target is not supported.
	ErrInvalidTarget = zerr.New("unsupported compiler target")

	// ErrInvalidModuleFormat is returned when the compiler module format is not supported.
	ErrInvalidModuleFormat = zerr.New("unsupported module format, expected 'esm', 'cjs' or 'iife'")

	// ErrInvalidJSXMode is returned when the compiler does not preserve JSX for the transformer.
	ErrInvalidJSXMode = zerr.New("unsupported jsx mode, expected 'preserve'")

	// ErrInvalidExtension is returned when an eligible extension does not start with a dot.
	ErrInvalidExtension = zerr.New("extension must start with '.'")

	// ErrMissingImportSource is returned when no JSX import source is configured.
	ErrMissingImportSource = zerr.New("transformer import source is required")

	// ErrTransformerModuleNotFound is returned when the JSX runtime package is not installed.
	ErrTransformerModuleNotFound = zerr.New("transformer runtime package not found")

	// ErrTransformerModuleInvalid is returned when the JSX runtime package manifest is unreadable.
	ErrTransformerModuleInvalid = zerr.New("transformer runtime package manifest is invalid")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDebounce is returned when the watch debounce window cannot be parsed.
	ErrInvalidDebounce = zerr.New("invalid watch debounce duration")

	// ErrInvalidPort is returned when a configured port is outside 0..65535.
	ErrInvalidPort = zerr.New("invalid port")

	// ErrNoEntryPoints is returned when a build or serve has nothing to bundle.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrInputNotFound is returned when an entry point pattern matches nothing.
	ErrInputNotFound = zerr.New("input not found")

	// ErrNoInputs is returned when the transform command is given no eligible files.
	ErrNoInputs = zerr.New("no eligible input files")

	// ErrStdoutNeedsOneInput is returned when stdout output is requested for several files.
	ErrStdoutNeedsOneInput = zerr.New("stdout output needs exactly one input file")

	// ErrBuildExecutionFailed is returned when the bundler reports errors.
	ErrBuildExecutionFailed = zerr.New("build execution failed")

	// ErrServeFailed is returned when the development server cannot start.
	ErrServeFailed = zerr.New("failed to start development server")

	// ErrWatchFailed is returned when the file watcher cannot start.
	ErrWatchFailed = zerr.New("failed to start file watcher")

	// ErrFileReadFailed is returned when a source file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read source file")

	// ErrFileWriteFailed is returned when a transformed file cannot be written.
	ErrFileWriteFailed = zerr.New("failed to write transformed file")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")
)

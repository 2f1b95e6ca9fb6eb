// Package app implements the application layer for domx.
package app

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/domx/internal/adapters/fs"
	"go.trai.ch/domx/internal/adapters/watcher"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	walker       *fs.Walker
	resolver     *fs.Resolver
	newWatcher   ports.WatcherFactory
	contents     *watcher.ContentCache
	stdout       io.Writer
	stderr       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	walker *fs.Walker,
	resolver *fs.Resolver,
	newWatcher ports.WatcherFactory,
	contents *watcher.ContentCache,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		walker:       walker,
		resolver:     resolver,
		newWatcher:   newWatcher,
		contents:     contents,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput redirects transformed output and build reports.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// SessionOptions are the settings shared by every command.
type SessionOptions struct {
	// Dir is the directory the configuration is searched from. Defaults to ".".
	Dir string
	// Mode overrides the session mode. Empty uses DOMX_MODE or the command default.
	Mode string
	// Caching overrides the configured caching when non-nil.
	Caching *bool
	// ProgramScope overrides the configured program scope when non-empty.
	ProgramScope string
	// Verbose reports every transformed unit.
	Verbose bool
	// Stats logs the cache counters when the command succeeds.
	Stats bool
	// LogFormat is one of "auto", "pretty", "text" or "json". Empty means auto.
	LogFormat string
}

func (o SessionOptions) dir() (string, error) {
	dir := o.Dir
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	return abs, nil
}

// resolvePath resolves p against base unless it is already absolute.
func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

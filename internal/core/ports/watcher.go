package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change reported for a watched input.
type WatchOp uint8

const (
	// OpCreate indicates an input or directory was created.
	OpCreate WatchOp = iota
	// OpWrite indicates an input was modified.
	OpWrite
	// OpRemove indicates an input or directory was removed.
	OpRemove
	// OpRename indicates an input was renamed away. Treated like a removal of the old path.
	OpRename
)

// WatchEvent is a change notification for one path.
type WatchEvent struct {
	// Path is the cleaned absolute path that changed. It is used as the unit identity.
	Path string
	// Operation is the type of change that occurred.
	Operation WatchOp
}

// Watcher delivers change notifications for a project tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Ignore excludes absolute directories from watching. It must be called before Start.
	Ignore(dirs ...string)
	// Start begins watching root recursively. Events stop when ctx is done.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of change events. It ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a new Watcher for one development session.
type WatcherFactory func() (Watcher, error)

package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/domx/internal/adapters/logger"
	"go.trai.ch/domx/internal/core/ports"
)

const (
	// WatcherNodeID is the unique identifier for the file watcher Graft node.
	WatcherNodeID graft.ID = "adapter.watcher"
	// ContentCacheNodeID is the unique identifier for the content cache Graft node.
	ContentCacheNodeID graft.ID = "adapter.content_cache"
)

func init() {
	graft.Register(graft.Node[ports.WatcherFactory]{
		ID:        WatcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WatcherFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func() (ports.Watcher, error) {
				w, err := NewWatcher(log)
				if err != nil {
					return nil, err
				}
				return w, nil
			}, nil
		},
	})

	graft.Register(graft.Node[*ContentCache]{
		ID:        ContentCacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*ContentCache, error) {
			return NewContentCache(), nil
		},
	})
}

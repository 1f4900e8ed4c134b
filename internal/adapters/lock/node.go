package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcache/internal/adapters/config"
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
)

// NodeID is the unique identifier for the directory locker Graft node.
const NodeID graft.ID = "adapter.dir_locker"

func init() {
	graft.Register(graft.Node[ports.DirLocker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.DirLocker, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Lock), nil
		},
	})
}

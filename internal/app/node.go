package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcache/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/objcache/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/objcache/internal/adapters/lock"     //nolint:depguard // Wired in app layer
	"go.trai.ch/objcache/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/objcache/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/objcache/internal/core/domain"
	"go.trai.ch/objcache/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the wired application and the logger used to report its errors.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			manifest.NodeID,
			fs.ProbeNodeID,
			fs.CopierNodeID,
			lock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	probe, err := graft.Dep[ports.FileProbe](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ObjectWriter](ctx)
	if err != nil {
		return nil, err
	}

	locker, err := graft.Dep[ports.DirLocker](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, log, store, probe, writer, locker), nil
}

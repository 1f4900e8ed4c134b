package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/objcache/internal/core/ports"
)

const (
	// ProbeNodeID is the unique identifier for the file probe Graft node.
	ProbeNodeID graft.ID = "adapter.fs.probe"
	// CopierNodeID is the unique identifier for the object writer Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
)

func init() {
	graft.Register(graft.Node[ports.FileProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProbe, error) {
			return NewProbe(), nil
		},
	})

	graft.Register(graft.Node[ports.ObjectWriter]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ObjectWriter, error) {
			return NewCopier(), nil
		},
	})
}

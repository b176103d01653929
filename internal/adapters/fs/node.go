package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// DiscovererNodeID is the unique identifier for the source discoverer Graft node.
	DiscovererNodeID graft.ID = "adapter.fs.discoverer"
	// SourceReaderNodeID is the unique identifier for the source reader Graft node.
	SourceReaderNodeID graft.ID = "adapter.fs.reader"
	// OutputWriterNodeID is the unique identifier for the output writer Graft node.
	OutputWriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	// Walker Node (Concrete implementation shared by source and writer)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.Discoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Discoverer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(walker), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        SourceReaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceReader, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(walker), nil
		},
	})

	graft.Register(graft.Node[ports.OutputWriter]{
		ID:        OutputWriterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.OutputWriter, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(walker), nil
		},
	})
}

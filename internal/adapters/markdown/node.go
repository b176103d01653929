package markdown

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the markup factory Graft node.
const NodeID graft.ID = "adapter.markdown"

func init() {
	graft.Register(graft.Node[ports.MarkupFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkupFactory, error) {
			return NewFactory(), nil
		},
	})
}

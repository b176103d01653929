package templates

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the page renderer Graft node.
const NodeID graft.ID = "adapter.templates"

func init() {
	graft.Register(graft.Node[ports.PageRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PageRenderer, error) {
			return NewRenderer()
		},
	})
}

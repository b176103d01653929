package feed

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/core/ports"
)

// NodeID is the unique identifier for the feed encoder Graft node.
const NodeID graft.ID = "adapter.feed"

func init() {
	graft.Register(graft.Node[ports.FeedEncoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FeedEncoder, error) {
			return NewEncoder(), nil
		},
	})
}

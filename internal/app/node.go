package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/quill/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/feed"        //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/frontmatter" //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/markdown"    //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/telemetry"   //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/adapters/templates"   //nolint:depguard // Wired in app layer
	"go.trai.ch/quill/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.DiscovererNodeID,
			fs.SourceReaderNodeID,
			fs.OutputWriterNodeID,
			frontmatter.NodeID,
			markdown.NodeID,
			templates.NodeID,
			feed.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.SourceReader](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.DocumentParser](ctx)
	if err != nil {
		return nil, err
	}

	markup, err := graft.Dep[ports.MarkupFactory](ctx)
	if err != nil {
		return nil, err
	}

	pages, err := graft.Dep[ports.PageRenderer](ctx)
	if err != nil {
		return nil, err
	}

	encoder, err := graft.Dep[ports.FeedEncoder](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, discoverer, reader, parser, markup, pages, encoder, writer, tracer), nil
}

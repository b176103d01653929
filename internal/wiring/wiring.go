// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/quill/internal/adapters/config"
	_ "go.trai.ch/quill/internal/adapters/feed"
	_ "go.trai.ch/quill/internal/adapters/frontmatter"
	_ "go.trai.ch/quill/internal/adapters/fs"
	_ "go.trai.ch/quill/internal/adapters/logger"
	_ "go.trai.ch/quill/internal/adapters/markdown"
	_ "go.trai.ch/quill/internal/adapters/telemetry"
	_ "go.trai.ch/quill/internal/adapters/templates"
	// Register app nodes.
	_ "go.trai.ch/quill/internal/app"
)

package ports

import "go.trai.ch/quill/internal/core/domain"

// ConfigLoader defines the interface for loading the site configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and resolves it into a Site.
	// A missing file yields the defaults rooted at the file's directory.
	Load(path string) (*domain.Site, error)

	// DiscoverRoot walks up from cwd to find the directory holding quill.yaml.
	// It returns cwd when no configuration file is found.
	DiscoverRoot(cwd string) (string, error)
}

package ports

import "go.trai.ch/quill/internal/core/domain"

// OutputWriter persists generated artifacts.
//
//go:generate mockgen -source=output.go -destination=mocks/mock_output.go -package=mocks
type OutputWriter interface {
	// WriteFile writes data to rel under dir, creating parent directories.
	// It reports false when the file already holds identical content.
	WriteFile(dir, rel string, data []byte) (bool, error)

	// CopyTree copies every non-hidden file under src into dst, preserving
	// relative paths.
	CopyTree(src, dst string) (domain.TreeCopy, error)

	// Clean removes dir and everything below it.
	Clean(dir string) error
}

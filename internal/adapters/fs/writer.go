package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer writes generated files below an output directory.
type Writer struct {
	walker *Walker
}

// NewWriter creates a new Writer.
func NewWriter(walker *Walker) *Writer {
	return &Writer{walker: walker}
}

// WriteFile writes data to rel below dir. Files whose content hash already
// matches data are left untouched and reported as unchanged.
func (w *Writer) WriteFile(dir, rel string, data []byte) (bool, error) {
	target, err := resolveInside(dir, rel)
	if err != nil {
		return false, err
	}

	same, err := sameContent(target, data)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrDirCreateFailed.Error()), "path", filepath.Dir(target))
	}
	//nolint:gosec // Target is checked to stay below dir
	if err := os.WriteFile(target, data, domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", target)
	}
	return true, nil
}

// CopyTree copies every non-hidden file under src into dst. A missing src
// copies nothing.
func (w *Writer) CopyTree(src, dst string) (domain.TreeCopy, error) {
	var report domain.TreeCopy
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return report, nil
	}

	for path, err := range w.walker.WalkFiles(src) {
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", src)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
		}
		//nolint:gosec // Path comes from walking src
		data, err := os.ReadFile(path)
		if err != nil {
			return report, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
		}
		rel = filepath.ToSlash(rel)
		written, err := w.WriteFile(dst, rel, data)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, rel)
		if written {
			report.Written++
		}
	}
	return report, nil
}

// Clean removes dir and everything below it. A missing dir is not an error.
func (w *Writer) Clean(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFailedToCleanOutput.Error()), "path", dir)
	}
	return nil
}

func resolveInside(dir, rel string) (string, error) {
	target := filepath.Join(dir, filepath.FromSlash(rel))
	back, err := filepath.Rel(dir, target)
	if err != nil || back == "." || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.Annotate(domain.ErrOutputPathOutsideRoot, "path", rel), "dir", dir)
	}
	return target, nil
}

func sameContent(path string, data []byte) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // Path is checked to stay below the output dir
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	info, err := f.Stat()
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	if !info.Mode().IsRegular() || info.Size() != int64(len(data)) {
		return false, nil
	}

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return hasher.Sum64() == xxhash.Sum64(data), nil
}

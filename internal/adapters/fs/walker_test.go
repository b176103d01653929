package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/fs"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "file1.txt", "content1")
	writeFile(t, tmpDir, "dir1/file2.txt", "content2")
	writeFile(t, tmpDir, "dir2/file3.txt", "content3")

	files := make([]string, 0)
	for path, err := range fs.NewWalker().WalkFiles(tmpDir) {
		require.NoError(t, err)
		files = append(files, path)
	}

	assert.Len(t, files, 3)
	assert.Contains(t, files, filepath.Join(tmpDir, "file1.txt"))
	assert.Contains(t, files, filepath.Join(tmpDir, "dir1", "file2.txt"))
	assert.Contains(t, files, filepath.Join(tmpDir, "dir2", "file3.txt"))
}

func TestWalker_WalkFiles_SkipsHidden(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ".git/config", "gitconfig")
	writeFile(t, tmpDir, "posts/.draft.md", "draft")
	writeFile(t, tmpDir, ".DS_Store", "junk")
	writeFile(t, tmpDir, "posts/hello.md", "hello")

	files := make([]string, 0)
	for path, err := range fs.NewWalker().WalkFiles(tmpDir) {
		require.NoError(t, err)
		files = append(files, path)
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "posts", "hello.md")}, files)
}

func TestWalker_WalkFiles_EarlyBreak(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.txt", "a")
	writeFile(t, tmpDir, "b.txt", "b")

	count := 0
	for _, err := range fs.NewWalker().WalkFiles(tmpDir) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	t.Parallel()

	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing")) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

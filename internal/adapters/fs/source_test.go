package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quill/internal/adapters/fs"
	"go.trai.ch/quill/internal/core/domain"
)

func TestSource_Discover(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "hello.md", "hello")
	writeFile(t, root, "2024/deep/nested.md", "nested")
	writeFile(t, root, "notes.txt", "not markdown")
	writeFile(t, root, ".hidden.md", "hidden")
	writeFile(t, root, ".drafts/wip.md", "draft")

	keys, err := fs.NewSource(fs.NewWalker()).Discover(root)
	require.NoError(t, err)

	got := make([]string, 0, len(keys))
	for _, k := range keys {
		got = append(got, k.String())
	}
	assert.Equal(t, []string{"2024/deep/nested.md", "hello.md"}, got)
}

func TestSource_Discover_MissingRoot(t *testing.T) {
	t.Parallel()

	keys, err := fs.NewSource(fs.NewWalker()).Discover(filepath.Join(t.TempDir(), "content"))
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestSource_ReadSource(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "posts/hello.md", "---\ntitle: Hello\n---\nbody")
	src := fs.NewSource(fs.NewWalker())

	data, err := src.ReadSource(root, domain.NewKey("posts/hello.md"))
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Hello\n---\nbody", string(data))

	_, err = src.ReadSource(root, domain.NewKey("posts/missing.md"))
	require.ErrorContains(t, err, domain.ErrFileReadFailed.Error())
}

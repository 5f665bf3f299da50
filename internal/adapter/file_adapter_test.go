package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "assetlink.dev/pkg/assetlink/internal/model"
)

func TestLocalFileAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalFileAdapter()

	t.Run("reads existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

		content, err := adapter.ReadFile(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(content))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "nope.html")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLocalFileAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalFileAdapter()

	t.Run("creates new file with permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("new"), 0o640))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		info, err := adapter.FileInfo(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("replaces existing content entirely", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("a much longer original content"), 0o644))

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("short"), 0o644))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "short", string(content))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "index.html")

		require.NoError(t, adapter.WriteFile(m.Path(path), []byte("x"), 0o644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "index.html", entries[0].Name())
	})

	t.Run("missing directory fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "index.html")

		err := adapter.WriteFile(m.Path(path), []byte("x"), 0o644)
		require.Error(t, err)
		assert.NoFileExists(t, path)
	})
}

func TestLocalFileAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalFileAdapter()

	_, err := adapter.FileInfo(m.Path(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

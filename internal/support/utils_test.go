//go:build unit

package support_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/releasefixtures/internal/support"
)

func TestReadTrimmed(t *testing.T) {
	t.Run("should strip surrounding whitespace", func(t *testing.T) {
		// given
		filePath := filepath.Join(t.TempDir(), "version.txt")
		require.NoError(t, os.WriteFile(filePath, []byte("  1.2.3\n\n"), 0o644))

		// when
		content, err := support.ReadTrimmed(filePath)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", content)
	})

	t.Run("should wrap not exist errors", func(t *testing.T) {
		// when
		_, err := support.ReadTrimmed(filepath.Join(t.TempDir(), "missing.txt"))

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestCopyFile(t *testing.T) {
	t.Run("should replace the destination content", func(t *testing.T) {
		// given
		dir := t.TempDir()
		src := filepath.Join(dir, "src.md")
		dst := filepath.Join(dir, "dst.md")
		require.NoError(t, os.WriteFile(src, []byte("# Changelog"), 0o644))
		require.NoError(t, os.WriteFile(dst, []byte("old content that is longer"), 0o644))

		// when
		err := support.CopyFile(src, dst)

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(dst)
		require.NoError(t, readErr)
		assert.Equal(t, "# Changelog", string(data))
	})

	t.Run("should report a missing source", func(t *testing.T) {
		// given
		dir := t.TempDir()

		// when
		err := support.CopyFile(filepath.Join(dir, "nope.md"), filepath.Join(dir, "dst.md"))

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.NoFileExists(t, filepath.Join(dir, "dst.md"))
	})
}

func TestTruncateFile(t *testing.T) {
	t.Run("should create an empty file", func(t *testing.T) {
		// given
		filePath := filepath.Join(t.TempDir(), "out.md")

		// when
		err := support.TruncateFile(filePath)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(filePath)
		require.NoError(t, statErr)
		assert.Zero(t, info.Size())
	})

	t.Run("should empty an existing file", func(t *testing.T) {
		// given
		filePath := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, os.WriteFile(filePath, []byte("name=value"), 0o644))

		// when
		err := support.TruncateFile(filePath)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(filePath)
		require.NoError(t, statErr)
		assert.Zero(t, info.Size())
	})
}

func TestFindRepositoryRoot(t *testing.T) {
	t.Run("should find the nearest go.mod above the directory", func(t *testing.T) {
		// given
		root := t.TempDir()
		nested := filepath.Join(root, "pkg", "fixtures")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x"), 0o644))

		// when
		found, err := support.FindRepositoryRoot(nested)

		// then
		require.NoError(t, err)
		expected, _ := filepath.EvalSymlinks(root)
		actual, _ := filepath.EvalSymlinks(found)
		assert.Equal(t, expected, actual)
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("should join relative paths onto the root", func(t *testing.T) {
		assert.Equal(t, filepath.Join("/repo", "github_output.md"), support.ResolvePath("/repo", "github_output.md"))
	})

	t.Run("should keep absolute paths", func(t *testing.T) {
		assert.Equal(t, "/tmp/out.md", support.ResolvePath("/repo", "/tmp/out.md"))
	})
}

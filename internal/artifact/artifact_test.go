package artifact

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	require.NoError(t, Write(context.Background(), path, []byte("<html></html>")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(b))
	assertNoTempFiles(t, dir)
}

func TestWrite_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	require.NoError(t, os.WriteFile(path, []byte("a much longer previous version"), 0o644))
	require.NoError(t, Write(context.Background(), path, []byte("v1")))
	require.NoError(t, Write(context.Background(), path, []byte("v2")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(b))
	assertNoTempFiles(t, dir)
}

func TestWrite_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.html")

	err := Write(context.Background(), path, []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write artifact")
	assert.Contains(t, err.Error(), path)
}

func TestWrite_EmptyPath(t *testing.T) {
	err := Write(context.Background(), "", []byte("x"))
	assert.ErrorIs(t, err, os.ErrInvalid)
}

func TestWrite_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Write(ctx, path, []byte("new"))
	assert.ErrorIs(t, err, context.Canceled)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(b))
	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), ".tmp-"), "temp file left behind: %s", e.Name())
	}
}

func TestWrite_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission bits are not meaningful on Windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	require.NoError(t, Write(context.Background(), path, []byte("x")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, FilePerm, info.Mode().Perm())
}

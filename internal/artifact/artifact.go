// Package artifact writes the generated page to disk.
package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FilePerm is the permission applied to written artifacts.
const FilePerm os.FileMode = 0o644

// Write replaces the file at path with data. The bytes go to a temp file in
// the same directory which is then renamed over path, so readers see either
// the previous file or the complete new one, never a mix of both.
func Write(ctx context.Context, path string, data []byte) error {
	if err := write(ctx, path, data); err != nil {
		return fmt.Errorf("write artifact %s: %w", path, err)
	}
	return nil
}

func write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return os.ErrInvalid
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	// CreateTemp uses 0600; the page must stay readable by a browser or server.
	if err := tmp.Chmod(FilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	// Last chance to abort before the old file is replaced.
	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	_ = syncDir(dir)
	return nil
}

// syncDir is best effort; some platforms cannot fsync a directory.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

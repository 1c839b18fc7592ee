package paths

import (
	"os"
	"path/filepath"
)

const (
	DirPerm  = 0755
	FilePerm = 0644
)

// IconsDir returns the icon output directory for a project root:
// <root>/public/icons.
func IconsDir(root string) string {
	return filepath.Join(root, "public", "icons")
}

// EnsureDir creates dir and any missing parents. No-op if it already exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, DirPerm)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. An existing file at path is replaced unconditionally.
func AtomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

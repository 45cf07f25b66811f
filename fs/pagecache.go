// Package fs provides file-based storage for fetched pages and output rows.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tenders"
)

// Ensure PageCache implements tenders.PageCache at compile time.
var _ tenders.PageCache = (*PageCache)(nil)

// PageCache stores pages as files below a root directory.
// Writes go to a temporary file that is renamed into place, so a reader
// never sees a partially written page.
type PageCache struct {
	dir string
}

// NewPageCache creates a PageCache rooted at dir.
func NewPageCache(dir string) *PageCache {
	return &PageCache{dir: dir}
}

// Get returns the cached page for name.
func (c *PageCache) Get(name string) (string, bool, error) {
	path, err := c.path(name)
	if err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	} else if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Put stores html under name, replacing any previous version.
func (c *PageCache) Put(name string, html string) error {
	path, err := c.path(name)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, []byte(html))
}

// path resolves name below the cache root.
// Returns EINVALID for names that would escape it.
func (c *PageCache) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if name == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", tenders.Errorf(tenders.EINVALID, "invalid cache name %q", name)
	}
	return filepath.Join(c.dir, clean), nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

package content

import (
	"io/fs"
	"os"
	"path"
	"strings"
)

const fileExt = ".md"

// Store is the read-only content tree the catalog draws from. It is laid out
// as locale → identifier → document. Missing locales or documents are reported
// with an error satisfying errors.Is(err, fs.ErrNotExist).
type Store interface {
	// List returns the identifiers (file names without extension) under locale.
	List(locale string) ([]string, error)
	// Read returns the raw bytes of one document.
	Read(locale, slug string) ([]byte, error)
}

// FSStore serves Markdown documents from <locale>/<slug>.md inside an fs.FS.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore wraps fsys. Use fstest.MapFS in tests.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// DirStore returns an FSStore rooted at a directory on disk, typically content/blog.
func DirStore(dir string) *FSStore {
	return NewFSStore(os.DirFS(dir))
}

// List implements Store.
func (s *FSStore) List(locale string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, locale)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, fileExt))
	}
	return ids, nil
}

// Read implements Store.
func (s *FSStore) Read(locale, slug string) ([]byte, error) {
	return fs.ReadFile(s.fsys, path.Join(locale, slug+fileExt))
}

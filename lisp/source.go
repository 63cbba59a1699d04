package lisp

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrSourceNotFound is returned by a SourceProvider which has no source with
// the requested name.
var ErrSourceNotFound = errors.New("source not found")

// SourceProvider resolves the filename given to load into the source text it
// names.
type SourceProvider interface {
	ReadSource(name string) ([]byte, error)
}

// SourceFunc is a function that implements SourceProvider.
type SourceFunc func(name string) ([]byte, error)

// ReadSource calls fn.
func (fn SourceFunc) ReadSource(name string) ([]byte, error) {
	return fn(name)
}

// OSSource reads source files from the host filesystem.  Relative names are
// resolved against Dir, or the working directory when Dir is empty.
type OSSource struct {
	Dir string
}

// ReadSource implements SourceProvider.
func (src *OSSource) ReadSource(name string) ([]byte, error) {
	p := name
	if src.Dir != "" && !filepath.IsAbs(name) {
		p = filepath.Join(src.Dir, name)
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrSourceNotFound
	}
	return b, err
}

// FSSource returns a SourceProvider which reads from fsys, typically an
// embed.FS.
func FSSource(fsys fs.FS) SourceProvider {
	return SourceFunc(func(name string) ([]byte, error) {
		name = path.Clean(filepath.ToSlash(name))
		if !fs.ValidPath(name) {
			return nil, ErrSourceNotFound
		}
		b, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSourceNotFound
		}
		return b, err
	})
}

// ChainSources returns a SourceProvider which tries each of p in order and
// returns the first source found.
func ChainSources(p ...SourceProvider) SourceProvider {
	return SourceFunc(func(name string) ([]byte, error) {
		for _, src := range p {
			b, err := src.ReadSource(name)
			if errors.Is(err, ErrSourceNotFound) {
				continue
			}
			return b, err
		}
		return nil, ErrSourceNotFound
	})
}

// Package library looks up, decodes, parses and caches LTspice symbol
// definitions.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// ErrNotFound is returned by a Source that does not know a symbol
var ErrNotFound = fmt.Errorf("symbol not found: %w", model.ErrUnresolvedSymbol)

// Source maps a symbol name to raw .asy content
type Source interface {
	Lookup(name string) ([]byte, error)
}

// MapSource serves symbols from memory, keyed by symbol name
type MapSource map[string]string

// Lookup returns the stored content for name
func (m MapSource) Lookup(name string) ([]byte, error) {
	if s, ok := m[name]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// DirSource searches a directory tree for <name>.asy. A name may carry a
// library sub-path with backslashes (e.g. "Misc\\signal"). The exact path
// is tried first; after that the tree is searched for a file with the same
// base name, ignoring case.
type DirSource struct {
	Root string

	once  sync.Once
	index map[string]string // lowercased base name -> path
	err   error
}

// NewDirSource creates a source rooted at dir
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

// Lookup reads the .asy file for name
func (d *DirSource) Lookup(name string) ([]byte, error) {
	rel := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if !strings.EqualFold(filepath.Ext(rel), ".asy") {
		rel += ".asy"
	}

	data, err := os.ReadFile(filepath.Join(d.Root, rel))
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read symbol %q: %w", name, err)
	}

	d.once.Do(d.buildIndex)
	if d.err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", d.Root, d.err)
	}
	path, ok := d.index[strings.ToLower(filepath.Base(rel))]
	if !ok {
		return nil, fmt.Errorf("%q in %s: %w", name, d.Root, ErrNotFound)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol %q: %w", name, err)
	}
	return data, nil
}

// buildIndex walks Root once. The first match in lexical walk order wins.
func (d *DirSource) buildIndex() {
	d.index = make(map[string]string)
	d.err = filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == d.Root {
				return err
			}
			return nil
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(path), ".asy") {
			return nil
		}
		key := strings.ToLower(entry.Name())
		if _, seen := d.index[key]; !seen {
			d.index[key] = path
		}
		return nil
	})
	if errors.Is(d.err, fs.ErrNotExist) {
		d.err = nil
	}
}

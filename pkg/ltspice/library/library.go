package library

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/parser"
)

// Library resolves symbol names through an ordered list of sources and
// caches the parsed definitions. It is safe for concurrent use; repeated
// lookups of a name return the identical definition.
type Library struct {
	sources []Source
	logger  *slog.Logger

	mu   sync.Mutex
	defs map[string]*model.SymbolDefinition
}

// New creates a library over sources, searched in order
func New(logger *slog.Logger, sources ...Source) *Library {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Library{
		sources: sources,
		logger:  logger,
		defs:    make(map[string]*model.SymbolDefinition),
	}
}

// FromDirs creates a library searching each directory in order
func FromDirs(logger *slog.Logger, dirs ...string) *Library {
	sources := make([]Source, 0, len(dirs))
	for _, dir := range dirs {
		sources = append(sources, NewDirSource(dir))
	}
	return New(logger, sources...)
}

// Resolve returns the definition for name, loading it on first use
func (l *Library) Resolve(name string) (*model.SymbolDefinition, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if def, ok := l.defs[name]; ok {
		return def, nil
	}

	raw, err := l.lookup(name)
	if err != nil {
		return nil, err
	}
	text, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("symbol %q: %w", name, err)
	}
	def, err := parser.ParseSymbol(name, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse symbol %q: %w", name, err)
	}

	l.logger.Debug("loaded symbol", "name", name, "shapes", len(def.Shapes), "windows", len(def.Windows), "pins", len(def.Pins))
	l.defs[name] = def
	return def, nil
}

func (l *Library) lookup(name string) ([]byte, error) {
	for _, src := range l.sources {
		raw, err := src.Lookup(name)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Len reports how many definitions are cached
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.defs)
}

// OpenSchematic reads, decodes and parses a .asc file and resolves its
// symbols through lib
func OpenSchematic(filename string, lib *Library) (*model.Schematic, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	text, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return parser.LoadNamed(filename, strings.NewReader(text), lib)
}

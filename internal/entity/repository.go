package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/deicod/scaffolder/internal/naming"
)

// ErrNotFound is returned by Load when no document exists for the entity.
var ErrNotFound = errors.New("entity definition not found")

// Repository resolves stored entity definitions by name.
type Repository interface {
	Lookup(name string) (Definition, bool)
}

// Store is a Repository that can also explain missing definitions and list
// everything it holds.
type Store interface {
	Repository
	Load(name string) (Definition, error)
	Names() ([]string, error)
}

var documentExtensions = []string{".json", ".yaml", ".yml"}

// DirRepository reads definitions from <dir>/<Name>.{json,yaml,yml}.
type DirRepository struct {
	dir    string
	logger *zap.Logger
}

// NewDirRepository returns a repository rooted at dir. A nil logger discards output.
func NewDirRepository(dir string, logger *zap.Logger) *DirRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirRepository{dir: dir, logger: logger}
}

// Dir returns the directory the repository reads from.
func (r *DirRepository) Dir() string { return r.dir }

// Lookup implements Repository. Unreadable documents are logged and reported as absent.
func (r *DirRepository) Lookup(name string) (Definition, bool) {
	def, err := r.Load(name)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn("ignoring unreadable entity definition", zap.String("entity", name), zap.Error(err))
		}
		return Definition{}, false
	}
	return def, true
}

// Load reads the definition for name, reporting why it could not be read.
func (r *DirRepository) Load(name string) (Definition, error) {
	base := naming.UpperFirst(strings.TrimSpace(name))
	if base == "" {
		return Definition{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	for _, ext := range documentExtensions {
		path := filepath.Join(r.dir, base+ext)
		raw, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Definition{}, err
		}
		def, err := decodeDefinition(raw, ext)
		if err != nil {
			return Definition{}, fmt.Errorf("decode %s: %w", path, err)
		}
		if def.Name == "" {
			def.Name = base
		}
		return def, nil
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, base)
}

// Names lists every entity that has a stored definition, sorted.
func (r *DirRepository) Names() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	seen := make(map[string]struct{})
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isDocumentExtension(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// IsDocument reports whether path looks like a stored entity definition.
func IsDocument(path string) bool {
	return isDocumentExtension(filepath.Ext(path))
}

func isDocumentExtension(ext string) bool {
	for _, candidate := range documentExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func decodeDefinition(raw []byte, ext string) (Definition, error) {
	var def Definition
	switch ext {
	case ".json":
		if err := json.Unmarshal(raw, &def); err != nil {
			return Definition{}, err
		}
	default:
		if err := yaml.Unmarshal(raw, &def); err != nil {
			return Definition{}, err
		}
	}
	return def, nil
}

// MemoryRepository serves definitions held in memory, keyed by capitalized name.
type MemoryRepository struct {
	defs map[string]Definition
}

// NewMemoryRepository indexes the provided definitions.
func NewMemoryRepository(defs ...Definition) *MemoryRepository {
	repo := &MemoryRepository{defs: make(map[string]Definition, len(defs))}
	for _, def := range defs {
		repo.Put(def)
	}
	return repo
}

// Put stores or replaces a definition.
func (r *MemoryRepository) Put(def Definition) {
	r.defs[naming.UpperFirst(def.Name)] = def
}

// Lookup implements Repository.
func (r *MemoryRepository) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[naming.UpperFirst(strings.TrimSpace(name))]
	return def, ok
}

// Load implements Store.
func (r *MemoryRepository) Load(name string) (Definition, error) {
	def, ok := r.Lookup(name)
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, naming.UpperFirst(strings.TrimSpace(name)))
	}
	return def, nil
}

// Names implements Store.
func (r *MemoryRepository) Names() ([]string, error) {
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

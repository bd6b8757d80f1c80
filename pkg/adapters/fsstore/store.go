// Package fsstore implements ports.Store over an ordered list of
// search-path roots, with an optional embedded root searched last.
package fsstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/dockweave/pkg/domain"
)

// Ext is the filename extension identifying a specification file.
// A specification named "qml2_docker" lives in "qml2_docker.dockspec".
const Ext = ".dockspec"

// BundledName is the display location attributed to specifications
// resolved from the embedded defaults.
const BundledName = "<bundled>"

type root struct {
	name string
	fsys fs.FS
}

// Store resolves specifications against search-path directories in
// order; the first root containing a matching file wins. It performs
// read-only filesystem access and holds no mutable state.
type Store struct {
	roots []root
}

// Option configures a Store.
type Option func(*Store)

// WithBundled appends an embedded filesystem as the final search root.
func WithBundled(fsys fs.FS) Option {
	return func(s *Store) {
		s.roots = append(s.roots, root{name: BundledName, fsys: fsys})
	}
}

// New creates a Store over the given directories, in precedence order.
// Directories are not validated eagerly; missing or unreadable ones are
// skipped during lookup.
func New(dirs []string, opts ...Option) *Store {
	s := &Store{roots: make([]root, 0, len(dirs)+1)}
	for _, dir := range dirs {
		s.roots = append(s.roots, root{name: dir, fsys: os.DirFS(dir)})
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// specFile is the on-disk YAML shape of a specification.
type specFile struct {
	Description string            `mapstructure:"description"`
	Includes    []string          `mapstructure:"includes"`
	Values      map[string]string `mapstructure:"values"`
	Fragments   []string          `mapstructure:"fragments"`
}

// Find returns the first specification matching name along the search
// order. Matching is an exact, case-sensitive file name match.
func (s *Store) Find(name string) (*domain.Specification, error) {
	if strings.ContainsAny(name, "/\\") || name == "" {
		return nil, &domain.NotFoundError{Name: name}
	}
	searched := make([]string, 0, len(s.roots))
	for _, r := range s.roots {
		searched = append(searched, r.name)
		data, err := fs.ReadFile(r.fsys, name+Ext)
		if err != nil {
			// Missing or unreadable roots are skipped, not fatal.
			continue
		}
		return parse(name, r.name, data)
	}
	return nil, &domain.NotFoundError{Name: name, Searched: searched}
}

// List returns the names visible across all roots, sorted. A name
// present in several roots is attributed to the first one, mirroring
// Find's precedence.
func (s *Store) List() ([]domain.SpecInfo, error) {
	byName := make(map[string]string)
	var names []string
	for _, r := range s.roots {
		entries, err := fs.ReadDir(r.fsys, ".")
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), Ext) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), Ext)
			if _, ok := byName[name]; !ok {
				byName[name] = r.name
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	infos := make([]domain.SpecInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, domain.SpecInfo{Name: name, Location: byName[name]})
	}
	return infos, nil
}

// parse decodes a specification file. The YAML is first unmarshalled
// into a generic map and then decoded weakly typed, so bare scalars in
// the values block (e.g. "PYTHON_V: 3.11") come out as strings.
func parse(name, location string, data []byte) (*domain.Specification, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("specification %q in %s: %w", name, location, err)
	}

	var file specFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &file,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("specification %q in %s: %w", name, location, err)
	}

	if len(file.Fragments) == 0 && len(file.Includes) == 0 {
		return nil, fmt.Errorf("specification %q in %s: no fragments or includes declared", name, location)
	}

	return &domain.Specification{
		Name:        name,
		Location:    location,
		Description: file.Description,
		Includes:    file.Includes,
		Values:      file.Values,
		Fragments:   file.Fragments,
	}, nil
}

// IsNotFound reports whether err is a specification lookup miss.
func IsNotFound(err error) bool {
	var nf *domain.NotFoundError
	return errors.As(err, &nf)
}

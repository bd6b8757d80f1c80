// Package memory implements ports.Store with an in-memory map.
// It is intended for tests and for embedding the engine with
// programmatically built specifications.
package memory

import (
	"sort"

	"github.com/aretw0/dockweave/pkg/domain"
)

// Location is the display location attributed to in-memory specifications.
const Location = "<memory>"

// Store implements ports.Store over a map of specifications.
type Store struct {
	specs map[string]*domain.Specification
}

// New creates a Store holding the given specifications. Specifications
// without a Location are attributed to the memory store.
func New(specs ...*domain.Specification) *Store {
	m := make(map[string]*domain.Specification, len(specs))
	for _, spec := range specs {
		if spec.Location == "" {
			spec.Location = Location
		}
		m[spec.Name] = spec
	}
	return &Store{specs: m}
}

// Find returns the specification registered under name.
func (s *Store) Find(name string) (*domain.Specification, error) {
	spec, ok := s.specs[name]
	if !ok {
		return nil, &domain.NotFoundError{Name: name, Searched: []string{Location}}
	}
	return spec, nil
}

// List returns all registered names, sorted.
func (s *Store) List() ([]domain.SpecInfo, error) {
	infos := make([]domain.SpecInfo, 0, len(s.specs))
	for _, spec := range s.specs {
		infos = append(infos, domain.SpecInfo{Name: spec.Name, Location: spec.Location})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

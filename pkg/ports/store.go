package ports

import "github.com/aretw0/dockweave/pkg/domain"

// Store resolves named Dockerfile specifications.
// Implementations iterate their roots in order; the first root
// containing a matching specification wins, and later roots never
// shadow earlier ones.
type Store interface {
	// Find returns the first specification matching name. It returns
	// *domain.NotFoundError after exhausting every root.
	Find(name string) (*domain.Specification, error)

	// List returns every specification name visible through the store,
	// sorted, each attributed to the root that wins its lookup.
	List() ([]domain.SpecInfo, error)
}

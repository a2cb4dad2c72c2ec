package store

import (
	"context"
)

// KnowledgeStore is the read-only view of the knowledge graph the
// investigator needs: which facts are already recorded, and which package
// indexes are registered.
type KnowledgeStore interface {
	// FactExists reports whether the (package, version, index) triple is
	// known to the graph in any form.
	FactExists(ctx context.Context, packageName, packageVersion, indexURL string) (bool, error)

	// FactExistsForSolver reports whether the triple has been solved by
	// the named solver backend.
	FactExistsForSolver(ctx context.Context, packageName, packageVersion, indexURL, solverName string) (bool, error)

	// SecurityFactExists reports whether aggregated security indicators
	// exist for the triple.
	SecurityFactExists(ctx context.Context, packageName, packageVersion, indexURL string) (bool, error)

	// RegisteredIndexes returns the URLs of all enabled package indexes.
	RegisteredIndexes(ctx context.Context) ([]string, error)

	Close(ctx context.Context) error
}

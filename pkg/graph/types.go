package graph

import "errors"

var (
	// ErrMissingVertex is returned by [Adjacency.Neighbors] when the vertex
	// has no entry in the relation.
	ErrMissingVertex = errors.New("missing vertex")

	// ErrDuplicateVertex is returned by [ValidateOrdering] when a vertex id
	// occurs more than once in an ordering.
	ErrDuplicateVertex = errors.New("duplicate vertex")
)

// Vertex is an integer vertex identifier. Vertices carry no attributes
// beyond their identity.
type Vertex int

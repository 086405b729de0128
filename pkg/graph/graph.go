package graph

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Adjacency is a read-only relation from query vertices to ordered neighbor
// lists. The zero value is an empty relation; use [NewAdjacency] to build one.
//
// Adjacency is safe for concurrent reads once constructed.
type Adjacency struct {
	lists   map[Vertex][]Vertex
	queries []Vertex // ascending
	edges   int
}

// NewAdjacency builds a relation from lists. Each neighbor list is copied, so
// later changes to lists do not affect the relation. Neighbor order is kept.
func NewAdjacency(lists map[Vertex][]Vertex) *Adjacency {
	a := &Adjacency{
		lists:   make(map[Vertex][]Vertex, len(lists)),
		queries: slices.Sorted(maps.Keys(lists)),
	}
	for q, nbrs := range lists {
		a.lists[q] = slices.Clone(nbrs)
		a.edges += len(nbrs)
	}
	return a
}

// Len returns the number of query vertices in the relation.
func (a *Adjacency) Len() int { return len(a.queries) }

// Edges returns the total number of neighbor entries across all lists.
func (a *Adjacency) Edges() int { return a.edges }

// Has reports whether q has an entry (possibly empty) in the relation.
func (a *Adjacency) Has(q Vertex) bool {
	_, ok := a.lists[q]
	return ok
}

// Queries returns the query vertices in ascending order.
// The returned slice must not be modified.
func (a *Adjacency) Queries() []Vertex { return a.queries }

// Neighbors returns the neighbor list of q, or an error wrapping
// [ErrMissingVertex] if q has no entry. The returned slice must not be modified.
func (a *Adjacency) Neighbors(q Vertex) ([]Vertex, error) {
	nbrs, ok := a.lists[q]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingVertex, q)
	}
	return nbrs, nil
}

// List returns the neighbor list of q, treating a missing entry as empty.
// The returned slice must not be modified.
func (a *Adjacency) List(q Vertex) []Vertex { return a.lists[q] }

// All iterates over every query and its neighbor list in ascending query order.
func (a *Adjacency) All() iter.Seq2[Vertex, []Vertex] {
	return func(yield func(Vertex, []Vertex) bool) {
		for _, q := range a.queries {
			if !yield(q, a.lists[q]) {
				return
			}
		}
	}
}

// Referrers returns every query whose neighbor list contains v, in ascending
// order. A query is reported once even if v repeats in its list.
//
// Referrers scans the whole relation on each call. Use [Adjacency.ReverseIndex]
// when the referrers of many vertices are needed.
func (a *Adjacency) Referrers(v Vertex) []Vertex {
	var out []Vertex
	for q, nbrs := range a.All() {
		if slices.Contains(nbrs, v) {
			out = append(out, q)
		}
	}
	return out
}

// ReverseIndex returns, for every vertex named in some neighbor list, the
// queries that name it. Each slice is ascending and free of duplicates, and
// matches what [Adjacency.Referrers] reports for that vertex.
func (a *Adjacency) ReverseIndex() map[Vertex][]Vertex {
	idx := make(map[Vertex][]Vertex)
	for q, nbrs := range a.All() {
		for _, v := range nbrs {
			refs := idx[v]
			// q is ascending across the outer loop, so a repeat of v within the
			// same list can only collide with the last entry.
			if n := len(refs); n > 0 && refs[n-1] == q {
				continue
			}
			idx[v] = append(refs, q)
		}
	}
	return idx
}

// Package graph provides the read-only graph model used by the bisection
// reorderer: integer vertex ids, an adjacency relation from query vertices to
// their neighbor lists, and helpers for working with vertex orderings.
//
// # Adjacency
//
// An [Adjacency] maps a query vertex to an ordered list of neighbor ids. The
// relation need not be symmetric: a vertex may appear in the neighbor lists of
// many queries without owning a list of its own. Gain computation in the
// reorderer depends on that "who points to me" direction, exposed here as
// [Adjacency.Referrers] (a brute-force scan) and [Adjacency.ReverseIndex]
// (the same answer, computed once for every vertex).
//
// Queries are always visited in ascending id order. Every scan over the
// relation is therefore deterministic, which keeps floating-point sums built
// from it reproducible between runs.
//
//	adj := graph.NewAdjacency(map[graph.Vertex][]graph.Vertex{
//	    1: {2, 3},
//	    2: {1, 3},
//	    3: {1, 2, 4},
//	    4: {3},
//	})
//	nbrs, err := adj.Neighbors(3) // [1 2 4], nil
//
// # Orderings
//
// An ordering is a plain []Vertex holding a permutation of vertex ids. The
// position of a vertex in the slice is the id it will be assigned. Use
// [ValidateOrdering] to check the permutation contract, [PosMap] to invert an
// ordering, and [LogGapCost] to estimate how well an ordering suits gap
// encoding of the adjacency lists.
package graph

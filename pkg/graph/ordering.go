package graph

import (
	"fmt"
	"math"
	"slices"
)

// PosMap returns a map from vertex to its index in order.
// If a vertex repeats, the last index wins.
func PosMap(order []Vertex) map[Vertex]int {
	pos := make(map[Vertex]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	return pos
}

// ValidateOrdering checks that order holds each vertex at most once.
// It returns an error wrapping [ErrDuplicateVertex] naming the first repeat.
// An empty ordering is valid.
func ValidateOrdering(order []Vertex) error {
	seen := make(map[Vertex]int, len(order))
	for i, v := range order {
		if j, ok := seen[v]; ok {
			return fmt.Errorf("%w: %d at positions %d and %d", ErrDuplicateVertex, v, j, i)
		}
		seen[v] = i
	}
	return nil
}

// SameVertices reports whether a and b hold the same multiset of vertices.
func SameVertices(a, b []Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}

// LogGapCost estimates how many bits gap encoding of the adjacency lists would
// need if every vertex were renumbered by its position in order.
//
// For each query, the positions of its neighbors are sorted and the gaps
// between consecutive positions (the first gap measured from 0) contribute
// log2(gap+1) each. Neighbors that do not appear in order are ignored. Lower
// is better; the value is an estimate and not an encoded size.
func LogGapCost(adj *Adjacency, order []Vertex) float64 {
	pos := PosMap(order)
	var total float64
	var buf []int
	for _, nbrs := range adj.All() {
		buf = buf[:0]
		for _, v := range nbrs {
			if p, ok := pos[v]; ok {
				buf = append(buf, p)
			}
		}
		slices.Sort(buf)
		prev := 0
		for _, p := range buf {
			total += math.Log2(float64(p-prev) + 1)
			prev = p
		}
	}
	return total
}

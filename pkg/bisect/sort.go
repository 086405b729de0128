package bisect

import (
	"cmp"
	"slices"

	"github.com/matzehuels/graphbisect/pkg/graph"
)

// SortWindow stably sorts order[s..e] by descending gain. Vertices with equal
// gain keep their relative order, and no element outside [s, e] is read or
// written. A window with s > e is left alone; indexes outside order panic.
//
// Vertices missing from gains sort as if their gain were 0.
func SortWindow(order []graph.Vertex, s, e int, gains map[graph.Vertex]float64) {
	if s > e {
		return
	}
	sortByGainDesc(view(order, s, e), gains)
}

func sortByGainDesc(vs []graph.Vertex, gains map[graph.Vertex]float64) {
	slices.SortStableFunc(vs, func(a, b graph.Vertex) int {
		return cmp.Compare(gains[b], gains[a])
	})
}

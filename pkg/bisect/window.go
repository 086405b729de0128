package bisect

import (
	"fmt"

	"github.com/matzehuels/graphbisect/pkg/graph"
)

// Window is a contiguous index range [S, E] of an ordering, inclusive at both
// ends, split at M into a left half [S, M] and a right half [M+1, E].
type Window struct {
	S, M, E int
}

// NewWindow returns the window [s, e] split at its midpoint s + (e-s)/2.
func NewWindow(s, e int) Window {
	return Window{S: s, M: s + (e-s)/2, E: e}
}

// Len returns the number of positions in the window.
func (w Window) Len() int { return w.E - w.S + 1 }

// LeftLen returns the number of positions in [S, M].
func (w Window) LeftLen() int { return w.M - w.S + 1 }

// RightLen returns the number of positions in [M+1, E].
func (w Window) RightLen() int { return w.E - w.M }

// Trivial reports whether the window holds at most one position.
func (w Window) Trivial() bool { return w.S >= w.E }

// String formats the window as "[s,m,e]".
func (w Window) String() string { return fmt.Sprintf("[%d,%d,%d]", w.S, w.M, w.E) }

// view returns order[s..e] as a slice whose capacity ends at e, so neither
// indexing nor append can reach outside the range.
func view(order []graph.Vertex, s, e int) []graph.Vertex {
	return order[s : e+1 : e+1]
}

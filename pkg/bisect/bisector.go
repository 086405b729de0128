package bisect

import "github.com/matzehuels/graphbisect/pkg/graph"

// Bisector performs single bisection steps over windows of one ordering.
type Bisector struct {
	order []graph.Vertex
	model GainModel
}

// NewBisector returns a Bisector that mutates order in place and scores
// vertices with model. The model must read the same order slice.
func NewBisector(order []graph.Vertex, model GainModel) *Bisector {
	return &Bisector{order: order, model: model}
}

// Step summarizes one bisection.
type Step struct {
	Window Window
	Swaps  int
}

// Bisect refines w in one pass:
//
//  1. compute the gain of every vertex in [S, E];
//  2. sort [S, M] and [M+1, E] independently by descending gain;
//  3. walk both halves in lockstep from their left ends, exchanging the pair
//     at (v, u) whenever their gains sum to more than zero.
//
// Each paired position is visited exactly once. The midpoint never moves, and
// only order[S..E] is touched. A window with S >= E is a no-op.
func (b *Bisector) Bisect(w Window) Step {
	step := Step{Window: w}
	if w.Trivial() {
		return step
	}

	gains := b.model.Gains(w)
	SortWindow(b.order, w.S, w.M, gains)
	SortWindow(b.order, w.M+1, w.E, gains)

	for v, u := w.S, w.M+1; v <= w.M && u <= w.E; v, u = v+1, u+1 {
		if gains[b.order[v]]+gains[b.order[u]] > 0 {
			b.order[v], b.order[u] = b.order[u], b.order[v]
			step.Swaps++
		}
	}
	return step
}

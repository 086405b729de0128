package bisect

import (
	"math"

	"github.com/matzehuels/graphbisect/pkg/graph"
)

// GainModel estimates, for every vertex of a window, the compression benefit
// of its current side assignment.
//
// Implementations read the ordering they were built over and must not modify
// it. Gains are recomputed from scratch on each call.
type GainModel interface {
	// Gains returns the move gain of every vertex currently in order[w.S..w.E].
	Gains(w Window) map[graph.Vertex]float64

	// MoveGain sums Cost(q, w) over every query q that names v as a neighbor.
	MoveGain(v graph.Vertex, w Window) float64

	// Cost returns the entropy-style cost of query q for the split of w.
	Cost(q graph.Vertex, w Window) float64

	// EdgeCount returns how many entries of q's neighbor list are found in
	// order[s..e], counting repeated entries each time.
	EdgeCount(q graph.Vertex, s, e int) int
}

// degXLog is deg·ln(n/(deg+1)). A zero degree contributes exactly 0.
func degXLog(deg, n int) float64 {
	if deg == 0 {
		return 0
	}
	return float64(deg) * math.Log(float64(n)/float64(deg+1))
}

// ScanModel is the brute-force gain model. Referrers are found by scanning
// every neighbor list in the relation, and degrees are counted by scanning
// every window position for every neighbor.
//
// Cost per vertex is O(|E|·|w|); use it as a reference for [IndexedModel].
type ScanModel struct {
	order []graph.Vertex
	adj   *graph.Adjacency
}

// NewScanModel returns a ScanModel over order and adj.
func NewScanModel(order []graph.Vertex, adj *graph.Adjacency) *ScanModel {
	return &ScanModel{order: order, adj: adj}
}

func (m *ScanModel) Gains(w Window) map[graph.Vertex]float64 {
	gains := make(map[graph.Vertex]float64, w.Len())
	for _, v := range view(m.order, w.S, w.E) {
		gains[v] = m.MoveGain(v, w)
	}
	return gains
}

func (m *ScanModel) MoveGain(v graph.Vertex, w Window) float64 {
	var gain float64
	for _, q := range m.adj.Referrers(v) {
		gain += m.Cost(q, w)
	}
	return gain
}

func (m *ScanModel) Cost(q graph.Vertex, w Window) float64 {
	deg1 := m.EdgeCount(q, w.S, w.M)
	deg2 := m.EdgeCount(q, w.M+1, w.E)
	return degXLog(deg1, w.LeftLen()) + degXLog(deg2, w.RightLen())
}

func (m *ScanModel) EdgeCount(q graph.Vertex, s, e int) int {
	if s > e {
		return 0
	}
	deg := 0
	for _, nb := range m.adj.List(q) {
		for _, x := range view(m.order, s, e) {
			if x == nb {
				deg++
			}
		}
	}
	return deg
}

// IndexedModel computes the same gains as [ScanModel] from two inverted
// indexes: the reverse adjacency (vertex to the queries naming it), built once,
// and a position index of the current window, rebuilt on every Gains call.
// Query costs are memoized per window, since many vertices share a query.
//
// Queries are summed in the same ascending order as ScanModel, so both models
// return bit-identical gains.
type IndexedModel struct {
	order     []graph.Vertex
	adj       *graph.Adjacency
	referrers map[graph.Vertex][]graph.Vertex
}

// NewIndexedModel returns an IndexedModel over order and adj. The reverse
// index is built here; adj must not change afterwards.
func NewIndexedModel(order []graph.Vertex, adj *graph.Adjacency) *IndexedModel {
	return &IndexedModel{order: order, adj: adj, referrers: adj.ReverseIndex()}
}

// positions maps each vertex of a window to its absolute index in the ordering.
type positions map[graph.Vertex]int

func (m *IndexedModel) index(s, e int) positions {
	if s > e {
		return nil
	}
	pos := make(positions, e-s+1)
	for i, v := range view(m.order, s, e) {
		pos[v] = s + i
	}
	return pos
}

// count returns the entries of q's list positioned in [s, e]; pos must cover
// that range.
func (m *IndexedModel) count(pos positions, q graph.Vertex, s, e int) int {
	deg := 0
	for _, nb := range m.adj.List(q) {
		if p, ok := pos[nb]; ok && p >= s && p <= e {
			deg++
		}
	}
	return deg
}

func (m *IndexedModel) cost(pos positions, q graph.Vertex, w Window) float64 {
	deg1 := m.count(pos, q, w.S, w.M)
	deg2 := m.count(pos, q, w.M+1, w.E)
	return degXLog(deg1, w.LeftLen()) + degXLog(deg2, w.RightLen())
}

func (m *IndexedModel) Gains(w Window) map[graph.Vertex]float64 {
	pos := m.index(w.S, w.E)
	costs := make(map[graph.Vertex]float64)
	gains := make(map[graph.Vertex]float64, w.Len())
	for _, v := range view(m.order, w.S, w.E) {
		var gain float64
		for _, q := range m.referrers[v] {
			c, ok := costs[q]
			if !ok {
				c = m.cost(pos, q, w)
				costs[q] = c
			}
			gain += c
		}
		gains[v] = gain
	}
	return gains
}

func (m *IndexedModel) MoveGain(v graph.Vertex, w Window) float64 {
	pos := m.index(w.S, w.E)
	var gain float64
	for _, q := range m.referrers[v] {
		gain += m.cost(pos, q, w)
	}
	return gain
}

func (m *IndexedModel) Cost(q graph.Vertex, w Window) float64 {
	return m.cost(m.index(w.S, w.E), q, w)
}

func (m *IndexedModel) EdgeCount(q graph.Vertex, s, e int) int {
	return m.count(m.index(s, e), q, s, e)
}

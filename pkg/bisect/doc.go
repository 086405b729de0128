// Package bisect reorders vertex ids by recursive graph bisection so that
// adjacency lists compress better under gap encoding.
//
// # Overview
//
// Gap encoders store each sorted neighbor list as differences between
// consecutive ids. The smaller those differences, the fewer bits they take, so
// an ordering that places vertices with shared neighbors close together makes
// the lists cheaper. This package computes such an ordering with the
// recursive bisection heuristic of Dhulipala et al., "Compressing Graphs and
// Indexes with Recursive Graph Bisection" (KDD 2016).
//
// # The Algorithm
//
// The [Orderer] works on one mutable []graph.Vertex. For a window [S, E] it:
//
//  1. splits the window at M = S + (E-S)/2;
//  2. computes a move gain for every vertex in the window ([GainModel]);
//  3. sorts each half by descending gain ([SortWindow]);
//  4. walks both halves in lockstep, exchanging a pair when the sum of their
//     gains is positive ([Bisector]);
//  5. recurses into the left half, and with [RecurseBoth] also the right one.
//
// The gain of a vertex v is the sum, over every query q naming v as a
// neighbor, of
//
//	deg1·ln(n1/(deg1+1)) + deg2·ln(n2/(deg2+1))
//
// where deg1 and deg2 count q's neighbors on each side of the split and n1, n2
// are the half sizes. A side holding none of q's neighbors contributes 0.
//
// # Gain Models
//
// Two interchangeable models are provided:
//
//   - [ScanModel]: brute force, scans the whole relation per vertex
//   - [IndexedModel]: reverse adjacency plus a per-window position index
//
// They return bit-identical gains; [StrategyIndexed] is the default.
//
// # Usage
//
//	adj := graph.NewAdjacency(lists)
//	order := []graph.Vertex{1, 2, 3, 4}
//	res, err := bisect.Reorder(ctx, order, adj, bisect.Options{
//	    Policy: bisect.RecurseBoth,
//	    Trace:  true,
//	})
//	// order now holds the new arrangement
//	svg, err := res.Trace.RenderSVG(ctx)
//
// The run is single-threaded and touches only the window being refined.
// Cancelling ctx stops the run between bisection steps.
package bisect

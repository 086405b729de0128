package bisect

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphbisect/internal/logging"
	"github.com/matzehuels/graphbisect/pkg/errors"
	"github.com/matzehuels/graphbisect/pkg/graph"
	"github.com/matzehuels/graphbisect/pkg/observability"
)

// Orderer is the recursive bisection driver over one ordering.
//
// An Orderer is not safe for concurrent use. It mutates the ordering it was
// created with in place.
type Orderer struct {
	order    []graph.Vertex
	opts     Options
	bisector *Bisector
	runID    string

	steps int
	swaps int
	trace *Trace
}

// New checks opts and the input contract, then returns an Orderer over order.
//
// With [MissingStrict], every vertex of order must have an entry in adj,
// otherwise a MISSING_VERTEX error wrapping [graph.ErrMissingVertex] is
// returned. With Options.Validate, a repeated vertex yields DUPLICATE_VERTEX.
// The ordering is not modified when New fails.
func New(order []graph.Vertex, adj *graph.Adjacency, opts Options) (*Orderer, error) {
	if adj == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "adjacency relation is nil")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Validate {
		if err := graph.ValidateOrdering(order); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDuplicateVertex, err, "ordering is not a permutation")
		}
	}
	if opts.Missing == MissingStrict {
		for _, v := range order {
			if _, err := adj.Neighbors(v); err != nil {
				return nil, errors.Wrap(errors.ErrCodeMissingVertex, err, "vertex %d has no adjacency entry", v)
			}
		}
	}

	var model GainModel
	switch opts.Strategy {
	case StrategyScan:
		model = NewScanModel(order, adj)
	default:
		model = NewIndexedModel(order, adj)
	}

	o := &Orderer{
		order:    order,
		opts:     opts,
		bisector: NewBisector(order, model),
		runID:    uuid.NewString(),
	}
	if opts.Trace {
		o.trace = &Trace{}
	}
	return o, nil
}

// RunID identifies this Orderer in logs and hooks.
func (o *Orderer) RunID() string { return o.runID }

// Bisections returns the number of bisection steps performed so far.
func (o *Orderer) Bisections() int { return o.steps }

// Swaps returns the number of exchanges performed so far.
func (o *Orderer) Swaps() int { return o.swaps }

// Trace returns the recorded bisection tree, or nil if tracing is off.
func (o *Orderer) Trace() *Trace { return o.trace }

// Reorder refines order[s..e]. A window with s >= e is left unchanged.
// Otherwise the window is split at m = s + (e-s)/2, bisected, and the left
// half (and with [RecurseBoth], then the right half) is reordered in turn.
//
// ctx is checked before every bisection step; a step in progress always runs
// to completion, so the ordering stays a permutation after cancellation.
func (o *Orderer) Reorder(ctx context.Context, s, e int) error {
	if s >= e {
		return nil
	}
	if s < 0 || e >= len(o.order) {
		return errors.New(errors.ErrCodeInvalidWindow, "window [%d,%d] outside ordering of length %d", s, e, len(o.order))
	}
	return o.reorder(ctx, s, e, 1, nil)
}

func (o *Orderer) reorder(ctx context.Context, s, e, depth int, parent *TraceNode) error {
	if s >= e {
		return nil
	}
	if o.opts.MaxDepth > 0 && depth > o.opts.MaxDepth {
		return nil
	}
	w := NewWindow(s, e)
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCanceled, err, "reorder stopped before window %s", w)
	}

	start := time.Now()
	step := o.bisector.Bisect(w)
	o.steps++
	o.swaps += step.Swaps

	o.logger(ctx).Debug("bisect", "window", w, "depth", depth, "swaps", step.Swaps)
	observability.Reorder().OnBisect(ctx, o.runID, w.S, w.E, step.Swaps, time.Since(start))

	node := o.record(parent, step, depth)

	if err := o.reorder(ctx, w.S, w.M, depth+1, node); err != nil {
		return err
	}
	if o.opts.Policy == RecurseBoth {
		return o.reorder(ctx, w.M+1, w.E, depth+1, node)
	}
	return nil
}

func (o *Orderer) record(parent *TraceNode, step Step, depth int) *TraceNode {
	if o.trace == nil {
		return nil
	}
	node := &TraceNode{Window: step.Window, Depth: depth, Swaps: step.Swaps}
	if parent == nil {
		o.trace.Root = node
	} else {
		parent.Children = append(parent.Children, node)
	}
	return node
}

func (o *Orderer) logger(ctx context.Context) *log.Logger {
	if o.opts.Logger != nil {
		return o.opts.Logger
	}
	return logging.FromContext(ctx)
}

// Result summarizes a completed call to [Reorder].
type Result struct {
	RunID      string
	Vertices   int
	Bisections int
	Swaps      int

	// CostBefore and CostAfter are [graph.LogGapCost] of the ordering
	// before and after the run.
	CostBefore float64
	CostAfter  float64

	Duration time.Duration
	Trace    *Trace
}

// Reorder reorders the whole of order in place, from index 0 to len(order)-1,
// and reports what it did. It is the usual entry point:
//
//	order := []graph.Vertex{1, 2, 3, 4}
//	res, err := bisect.Reorder(ctx, order, adj, bisect.Options{})
//
// On error the returned Result still reports the work done before the failure,
// and order remains a permutation of its initial contents.
func Reorder(ctx context.Context, order []graph.Vertex, adj *graph.Adjacency, opts Options) (Result, error) {
	o, err := New(order, adj, opts)
	if err != nil {
		return Result{Vertices: len(order)}, err
	}

	logger := o.logger(ctx)
	prog := logging.NewProgress(logger)
	hooks := observability.Reorder()
	policy := opts.Policy.String()

	res := Result{
		RunID:      o.runID,
		Vertices:   len(order),
		CostBefore: graph.LogGapCost(adj, order),
	}
	hooks.OnReorderStart(ctx, o.runID, policy, len(order))

	err = o.Reorder(ctx, 0, len(order)-1)

	res.Bisections = o.steps
	res.Swaps = o.swaps
	res.CostAfter = graph.LogGapCost(adj, order)
	res.Duration = prog.Elapsed()
	res.Trace = o.trace

	stats := observability.RunStats{Vertices: res.Vertices, Bisections: res.Bisections, Swaps: res.Swaps}
	hooks.OnReorderComplete(ctx, o.runID, policy, stats, res.Duration, err)

	if err != nil {
		logger.Warn("reorder stopped", "run", o.runID, "bisections", res.Bisections, "err", err)
		return res, err
	}
	prog.Done("reordered",
		"run", o.runID,
		"vertices", res.Vertices,
		"policy", policy,
		"bisections", res.Bisections,
		"swaps", res.Swaps,
		"cost_before", res.CostBefore,
		"cost_after", res.CostAfter,
	)
	return res, nil
}

package bisect

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the bisection tree.
//
// Each node is one bisected window, labeled with its range, split point and
// the number of exchanges it performed; windows with at least one exchange are
// filled light blue. Edges point from a window to the sub-windows bisected
// after it. A nil or empty trace yields an empty digraph.
func (t *Trace) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph Bisection {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	if t != nil && t.Root != nil {
		writeDOTNode(&buf, t.Root, 0)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeDOTNode(buf *bytes.Buffer, n *TraceNode, id int) int {
	nodeID := fmt.Sprintf("n%d", id)
	next := id + 1

	label := fmt.Sprintf("[%d..%d] m=%d\nswaps=%d", n.Window.S, n.Window.E, n.Window.M, n.Swaps)
	if n.Swaps > 0 {
		fmt.Fprintf(buf, "  %s [label=%q, fillcolor=lightblue];\n", nodeID, label)
	} else {
		fmt.Fprintf(buf, "  %s [label=%q];\n", nodeID, label)
	}
	for _, c := range n.Children {
		fmt.Fprintf(buf, "  %s -> n%d;\n", nodeID, next)
		next = writeDOTNode(buf, c, next)
	}
	return next
}

// RenderSVG renders the bisection tree as an SVG image via [Trace.ToDOT].
//
// All errors are wrapped with context using fmt.Errorf with %w.
func (t *Trace) RenderSVG(ctx context.Context) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(t.ToDOT()))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

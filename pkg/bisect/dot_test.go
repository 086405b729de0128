package bisect

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func sampleTrace() *Trace {
	return &Trace{Root: &TraceNode{
		Window: NewWindow(0, 7),
		Depth:  1,
		Swaps:  2,
		Children: []*TraceNode{
			{Window: NewWindow(0, 3), Depth: 2},
			{Window: NewWindow(4, 7), Depth: 2, Swaps: 1},
		},
	}}
}

func TestTraceToDOT(t *testing.T) {
	dot := sampleTrace().ToDOT()

	if !strings.HasPrefix(dot, "digraph Bisection {") {
		t.Error("ToDOT() should start with 'digraph Bisection {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}

	expected := []string{
		"rankdir=TB",
		"arrowhead=none",
		`n0 [label="[0..7] m=3\nswaps=2", fillcolor=lightblue]`,
		`n1 [label="[0..3] m=1\nswaps=0"]`,
		`n2 [label="[4..7] m=5\nswaps=1", fillcolor=lightblue]`,
		"n0 -> n1;",
		"n0 -> n2;",
	}
	for _, exp := range expected {
		if !strings.Contains(dot, exp) {
			t.Errorf("ToDOT() missing %q\n%s", exp, dot)
		}
	}
}

func TestTraceToDOTEmpty(t *testing.T) {
	for _, tr := range []*Trace{nil, {}} {
		dot := tr.ToDOT()
		if !strings.Contains(dot, "digraph Bisection {") {
			t.Error("ToDOT() should produce valid DOT for an empty trace")
		}
		if strings.Contains(dot, "n0") {
			t.Error("empty trace should have no nodes")
		}
	}
}

func TestTraceWalkAndLen(t *testing.T) {
	tr := sampleTrace()
	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
	var depths []int
	tr.Walk(func(n *TraceNode) { depths = append(depths, n.Depth) })
	if len(depths) != 3 || depths[0] != 1 || depths[1] != 2 || depths[2] != 2 {
		t.Errorf("Walk() depths = %v, want [1 2 2]", depths)
	}

	var nilTrace *Trace
	if nilTrace.Len() != 0 {
		t.Error("nil trace Len() should be 0")
	}
	nilTrace.Walk(func(*TraceNode) { t.Error("nil trace should not visit nodes") })
}

func TestTraceRenderSVG(t *testing.T) {
	svg, err := sampleTrace().RenderSVG(context.Background())
	if err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output is not an SVG document")
	}
}

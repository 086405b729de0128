package bisect

// Trace records the tree of windows bisected during a run.
type Trace struct {
	Root *TraceNode
}

// TraceNode is one bisected window. Children are the sub-windows that were
// bisected next, in the order they were visited.
type TraceNode struct {
	Window   Window
	Depth    int
	Swaps    int
	Children []*TraceNode
}

// Len returns the number of recorded bisections.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return t.Root.count()
}

func (n *TraceNode) count() int {
	if n == nil {
		return 0
	}
	c := 1
	for _, ch := range n.Children {
		c += ch.count()
	}
	return c
}

// Walk visits every node depth-first in the order the windows were bisected.
func (t *Trace) Walk(fn func(*TraceNode)) {
	if t == nil {
		return
	}
	t.Root.walk(fn)
}

func (n *TraceNode) walk(fn func(*TraceNode)) {
	if n == nil {
		return
	}
	fn(n)
	for _, ch := range n.Children {
		ch.walk(fn)
	}
}

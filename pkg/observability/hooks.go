// Package observability provides hooks for metrics, tracing, and logging of
// reordering runs.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends to the reordering engine. Consumers
// register hooks at startup to receive events about each run and each
// bisection step.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// A Prometheus-backed implementation is provided by [NewPrometheusHooks].
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks, err := observability.NewPrometheusHooks(prometheus.DefaultRegisterer)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    observability.SetReorderHooks(hooks)
//	    // ... run application
//	}
//
// The reorderer calls hooks to emit events:
//
//	observability.Reorder().OnReorderStart(ctx, runID, policy, len(order))
//	// ... bisect ...
//	observability.Reorder().OnReorderComplete(ctx, runID, policy, stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RunStats summarizes a finished reordering run.
type RunStats struct {
	Vertices   int
	Bisections int
	Swaps      int
}

// ReorderHooks receives events from the bisection reorderer.
type ReorderHooks interface {
	// OnReorderStart is called once before the first bisection of a run.
	OnReorderStart(ctx context.Context, runID, policy string, vertices int)

	// OnBisect is called after every bisection step over the window [s, e].
	OnBisect(ctx context.Context, runID string, s, e, swaps int, duration time.Duration)

	// OnReorderComplete is called once when a run finishes, successfully or not.
	OnReorderComplete(ctx context.Context, runID, policy string, stats RunStats, duration time.Duration, err error)
}

// NoopReorderHooks is a no-op implementation of ReorderHooks.
type NoopReorderHooks struct{}

func (NoopReorderHooks) OnReorderStart(context.Context, string, string, int)            {}
func (NoopReorderHooks) OnBisect(context.Context, string, int, int, int, time.Duration) {}
func (NoopReorderHooks) OnReorderComplete(context.Context, string, string, RunStats, time.Duration, error) {
}

var (
	reorderHooks ReorderHooks = NoopReorderHooks{}
	hooksMu      sync.RWMutex
)

// SetReorderHooks registers custom reorder hooks.
// This should be called once at application startup before any runs.
// A nil h is ignored.
func SetReorderHooks(h ReorderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reorderHooks = h
	}
}

// Reorder returns the registered reorder hooks.
func Reorder() ReorderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reorderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	reorderHooks = NoopReorderHooks{}
}

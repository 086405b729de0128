// Package pkg provides the libraries of graphbisect, a compression-friendly
// vertex reordering engine based on recursive graph bisection.
//
// # Overview
//
// Gap-encoded adjacency lists shrink when vertices that share neighbors get
// nearby ids. The pkg directory is organized into:
//
//  1. [graph] - Read-only adjacency relation, ordering helpers, gap cost estimate
//  2. [bisect] - The recursive bisection engine (gain models, sorter, bisector, orderer)
//  3. [config] - TOML configuration for reordering runs
//  4. [errors] - Coded error types
//  5. [observability] - Run and step hooks, Prometheus metrics
//  6. [buildinfo] - Version information
//
// # Data Flow
//
//	caller supplies []graph.Vertex + *graph.Adjacency
//	         ↓
//	bisect.Reorder (Orderer → Bisector → GainModel / SortWindow)
//	         ↓
//	same []graph.Vertex, mutated in place + bisect.Result
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/graph
// [bisect]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/bisect
// [config]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/graphbisect/pkg/buildinfo
package pkg

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/nilness"
)

// ErrDirectedGraph indicates that an MST was requested on a directed graph.
var ErrDirectedGraph = fmt.Errorf("prim_kruskal: MST requires an undirected graph: %w", core.ErrInvalidArgument)

// ErrUnweightedEdge indicates that at least one edge carries no weight.
var ErrUnweightedEdge = fmt.Errorf("prim_kruskal: MST requires every edge to be weighted: %w", core.ErrInvalidArgument)

// ErrNegativeWeight indicates that at least one edge weight is negative.
var ErrNegativeWeight = fmt.Errorf("prim_kruskal: MST requires non-negative weights: %w", core.ErrInvalidArgument)

// ErrEmptyRoot indicates that Compute was asked for Prim without a start node.
var ErrEmptyRoot = fmt.Errorf("prim_kruskal: empty root vertex: %w", core.ErrInvalidArgument)

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = fmt.Errorf("prim_kruskal: unknown MST method: %w", core.ErrInvalidArgument)

// MethodPrim selects Prim's algorithm (grow from a root with a linear-scan queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting node to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   L      - start node label for Prim; ignored when Method == MethodKruskal.
//
// See: prim_kruskal.Prim, prim_kruskal.Kruskal
type MSTOptions[L comparable] struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting node label for Prim's algorithm. Unused by Kruskal.
	Root L
}

// Option configures MSTOptions.
type Option[L comparable] func(*MSTOptions[L])

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod[L comparable](m string) Option[L] {
	return func(opts *MSTOptions[L]) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting node for Prim's algorithm; Kruskal ignores it.
func WithRoot[L comparable](root L) Option[L] {
	return func(opts *MSTOptions[L]) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal with a zero Root.
func DefaultOptions[L comparable]() MSTOptions[L] {
	return MSTOptions[L]{Method: MethodKruskal}
}

// NewOptions applies opts, in order, on top of DefaultOptions.
func NewOptions[L comparable](opts ...Option[L]) MSTOptions[L] {
	o := DefaultOptions[L]()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	- MethodKruskal: Kruskal(g).
//	- MethodPrim:    Prim(g, opts.Root) followed by TreeEdges.
//	- Otherwise:     ErrUnknownMethod.
//
// For Prim, a zero Root that is not itself a node of g yields ErrEmptyRoot.
//
// Returns the spanning-forest edges and their total weight. Prim only spans
// the component of Root; Kruskal spans every component.
func Compute[L comparable](g core.GraphView[L], opts MSTOptions[L]) ([]core.Edge[L], float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		var zero L
		root := core.NewNode(opts.Root)
		if opts.Root == zero && !nilness.IsNil(g) && !g.HasNode(root) {
			return nil, 0, ErrEmptyRoot
		}
		t, err := Prim(g, root)
		if err != nil {
			return nil, 0, err
		}

		return TreeEdges(g, t)
	default:
		return nil, 0, fmt.Errorf("Compute(%q): %w", opts.Method, ErrUnknownMethod)
	}
}

// validate rejects nil, directed, unweighted and negatively weighted inputs.
// Complexity: O(V²) through g.Edges().
func validate[L comparable](op string, g core.GraphView[L]) error {
	if nilness.IsNil(g) {
		return fmt.Errorf("%s: graph: %w", op, core.ErrNilInput)
	}
	if g.Directed() {
		return fmt.Errorf("%s: %w", op, ErrDirectedGraph)
	}
	for _, e := range g.Edges() {
		if !e.HasWeight() {
			return fmt.Errorf("%s: edge %v: %w", op, e, ErrUnweightedEdge)
		}
		if e.Weight() < 0 {
			return fmt.Errorf("%s: edge %v: %w", op, e, ErrNegativeWeight)
		}
	}

	return nil
}

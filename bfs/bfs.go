// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/internal/nilness"
)

// queueItem pairs a node with its BFS depth.
type queueItem[L comparable] struct {
	node  core.Node[L]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[L comparable] struct {
	graph core.GraphView[L]
	opts  Options[L]
	queue []queueItem[L]
	res   *Result[L]
}

// BFS runs breadth-first search on g starting from source.
//
// Errors: core.ErrNilInput, core.ErrNodeNotFound, ErrOptionViolation,
// the context error on cancellation, or any OnVisit error.
func BFS[L comparable](g core.GraphView[L], source core.Node[L], opts ...Option[L]) (*Result[L], error) {
	if nilness.IsNil(g) || nilness.IsNil(source.Label()) {
		return nil, fmt.Errorf("BFS: %w", core.ErrNilInput)
	}
	o := DefaultOptions[L]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("BFS: source %v: %w", source, core.ErrNodeNotFound)
	}

	nodes := g.Nodes()
	w := &walker[L]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[L], 0, len(nodes)),
		res: &Result[L]{
			Order:     make([]core.Node[L], 0, len(nodes)),
			Traversal: core.NewTraversal(source, nodes),
		},
	}

	w.res.Traversal.SetDistance(source, 0)
	w.queue = append(w.queue, queueItem[L]{node: source})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[L]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		w.res.Traversal.Finalize(item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers every unvisited neighbor within MaxDepth.
func (w *walker[L]) enqueueNeighbors(item queueItem[L]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.AdjacentNodesOf(item.node)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", item.node, err)
	}
	for _, nbr := range neighbors {
		if w.res.Traversal.Color(nbr) != core.Unvisited {
			continue
		}
		w.res.Traversal.Relax(nbr, item.node, float64(next))
		w.queue = append(w.queue, queueItem[L]{node: nbr, depth: next})
	}

	return nil
}

// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = fmt.Errorf("bfs: invalid option supplied: %w", core.ErrInvalidArgument)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[L comparable] func(*Options[L])

// Options holds parameters and callbacks to customize BFS execution.
type Options[L comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.Node[L], depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no depth
// limit and a no-op OnVisit.
func DefaultOptions[L comparable]() Options[L] {
	return Options[L]{
		Ctx:     context.Background(),
		OnVisit: func(core.Node[L], int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[L comparable](ctx context.Context) Option[L] {
	return func(o *Options[L]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[L comparable](fn func(n core.Node[L], depth int) error) Option[L] {
	return func(o *Options[L]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: ErrOptionViolation
func WithMaxDepth[L comparable](d int) Option[L] {
	return func(o *Options[L]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS run.
type Result[L comparable] struct {
	// Order lists visited nodes in visit sequence, source first.
	Order []core.Node[L]
	// Traversal carries hop distance, parent and color per node.
	Traversal *core.Traversal[L]
}

// Depth returns the hop count of n and whether n was reached.
func (r *Result[L]) Depth(n core.Node[L]) (int, bool) {
	if !r.Traversal.Reachable(n) {
		return 0, false
	}

	return int(r.Traversal.Distance(n)), true
}

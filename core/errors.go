// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations. Match them with errors.Is; the
// graph wraps them with operation context before returning.
var (
	// ErrNilInput indicates that a required argument was nil.
	ErrNilInput = errors.New("core: nil input")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that no edge occupies the referenced slot.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidArgument is the base of every structural precondition failure.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrDirectedEdge indicates a directed edge was offered to an undirected graph.
	ErrDirectedEdge = fmt.Errorf("core: directed edge in undirected graph: %w", ErrInvalidArgument)

	// ErrIndexOutOfRange indicates a node index outside [0, NodeCount()).
	ErrIndexOutOfRange = fmt.Errorf("core: node index out of range: %w", ErrInvalidArgument)

	// ErrUnsupported indicates a directed-only query on an undirected graph.
	ErrUnsupported = errors.New("core: operation not supported by undirected graph")
)

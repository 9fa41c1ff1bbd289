// SPDX-License-Identifier: MIT

package graphio

import (
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/spanforest/core"
)

// Result is the TOML shape of one algorithm run.
type Result struct {
	Algorithm   string     `toml:"algorithm"`
	Root        string     `toml:"root,omitempty"`
	Nodes       int        `toml:"nodes"`
	TotalWeight float64    `toml:"total_weight"`
	Edges       []EdgeDoc  `toml:"edges,omitempty"`
	Components  [][]string `toml:"components,omitempty"`
}

// TreeResult describes a spanning tree or forest.
func TreeResult(algorithm, root string, nodes int, edges []core.Edge[string], total float64) Result {
	return Result{
		Algorithm:   algorithm,
		Root:        root,
		Nodes:       nodes,
		TotalWeight: total,
		Edges:       EdgeDocs(edges),
	}
}

// ComponentsResult describes a connected-components partition.
func ComponentsResult(nodes int, cc [][]core.Node[string]) Result {
	res := Result{Algorithm: "components", Nodes: nodes, Components: make([][]string, 0, len(cc))}
	for _, c := range cc {
		ls := make([]string, 0, len(c))
		for _, n := range c {
			ls = append(ls, n.Label())
		}
		res.Components = append(res.Components, ls)
	}

	return res
}

// EncodeResult writes res to w as TOML.
func EncodeResult(w io.Writer, res Result) error {
	if err := toml.NewEncoder(w).Encode(res); err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	return nil
}

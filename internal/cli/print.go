// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/katalvlaran/spanforest/graphio"
	"github.com/katalvlaran/spanforest/internal/config"
)

// printResult renders res in the configured output format.
func printResult(w io.Writer, output string, res graphio.Result) error {
	switch output {
	case config.OutputTOML:
		return graphio.EncodeResult(w, res)
	case config.OutputTable:
		if res.Components != nil {
			return printComponentsTable(w, res)
		}

		return printTreeTable(w, res)
	default:
		return fmt.Errorf("%w: got %q", config.ErrInvalidOutput, output)
	}
}

func printTreeTable(w io.Writer, res graphio.Result) error {
	title := res.Algorithm
	if res.Root != "" {
		title += " from " + res.Root
	}
	fmt.Fprintf(w, "%s: %d nodes, %d edges, total weight %s\n",
		title, res.Nodes, len(res.Edges), formatWeight(res.TotalWeight))

	cfgBuilder := tablewriter.NewConfigBuilder().WithRowAlignment(tw.AlignRight)
	table := tablewriter.NewTable(w, tablewriter.WithConfig(cfgBuilder.Build()))
	table.Header("from", "to", "weight")
	for _, e := range res.Edges {
		weight := "-"
		if e.Weight != nil {
			weight = formatWeight(*e.Weight)
		}
		if err := table.Append(e.From, e.To, weight); err != nil {
			return err
		}
	}
	table.Footer("", "total", formatWeight(res.TotalWeight))

	return table.Render()
}

func printComponentsTable(w io.Writer, res graphio.Result) error {
	fmt.Fprintf(w, "components: %d nodes, %d components\n", res.Nodes, len(res.Components))

	table := tablewriter.NewTable(w)
	table.Header("component", "size", "nodes")
	for i, c := range res.Components {
		if err := table.Append(strconv.Itoa(i+1), strconv.Itoa(len(c)), strings.Join(c, " ")); err != nil {
			return err
		}
	}

	return table.Render()
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

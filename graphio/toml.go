// SPDX-License-Identifier: MIT

package graphio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/spanforest/core"
)

// Decode reads one graph document from r.
func Decode(r io.Reader) (*core.Graph[string], error) {
	var doc Document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing graph document: %w", err)
	}

	g, err := doc.Graph()
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}

	return g, nil
}

// Load reads a graph document from path.
func Load(path string) (*core.Graph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Encode writes g to w as a graph document.
func Encode(w io.Writer, g *core.Graph[string]) error {
	if g == nil {
		return fmt.Errorf("encoding graph: %w", core.ErrNilInput)
	}
	if err := toml.NewEncoder(w).Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("marshaling graph document: %w", err)
	}

	return nil
}

// Save writes g to path, creating parent directories as needed.
func Save(path string, g *core.Graph[string]) error {
	if g == nil {
		return fmt.Errorf("saving graph: %w", core.ErrNilInput)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(ToDocument(g))
	if err != nil {
		return fmt.Errorf("marshaling graph document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

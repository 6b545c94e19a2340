package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bandgraph/pkg/diagram"
)

var orientationToString = map[diagram.Orientation]string{
	diagram.OrientationHorizontal: "horizontal",
}

type file struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID           string  `json:"id"`
	Label        string  `json:"label,omitempty"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	R            float64 `json:"r"`
	Orientation  string  `json:"orientation,omitempty"`
	Bands        []band  `json:"bands,omitempty"`
	CounterBands []band  `json:"counter_bands,omitempty"`
}

type band struct {
	Proportion float64 `json:"proportion"`
	Fill       string  `json:"fill"`
}

type edge struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Strength *float64 `json:"strength,omitempty"`
	Blocked  bool     `json:"blocked,omitempty"`
}

// WriteJSON encodes a diagram as JSON and writes it to w.
// The output includes all nodes (with bands) and edges, and can be
// re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	out := file{
		Nodes: make([]node, len(d.Nodes())),
		Edges: make([]edge, len(d.Edges())),
	}

	for i, n := range d.Nodes() {
		nd := node{
			ID:           n.ID,
			Label:        n.Label,
			X:            n.X,
			Y:            n.Y,
			R:            n.R,
			Bands:        bandsToJSON(n.Bands),
			CounterBands: bandsToJSON(n.CounterBands),
		}
		if s, ok := orientationToString[n.Orientation]; ok {
			nd.Orientation = s
		}
		out.Nodes[i] = nd
	}
	for i, e := range d.Edges() {
		ed := edge{From: e.From, To: e.To, Blocked: e.Blocked}
		if e.Strength != 1 {
			strength := e.Strength
			ed.Strength = &strength
		}
		out.Edges[i] = ed
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a diagram to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *diagram.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

func bandsToJSON(in []diagram.Band) []band {
	if len(in) == 0 {
		return nil
	}
	out := make([]band, len(in))
	for i, b := range in {
		out[i] = band{Proportion: b.Proportion, Fill: b.Fill}
	}
	return out
}

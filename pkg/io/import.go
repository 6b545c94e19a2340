package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bandgraph/pkg/diagram"
)

// ReadJSON decodes a JSON diagram from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a", "x": 100, "y": 100, "r": 40}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Each node must have an "id" field. Optional fields:
//   - label: display text (defaults to the ID at render time)
//   - orientation: "vertical" or "horizontal" (defaults to vertical)
//   - bands, counter_bands: arrays of {proportion, fill}
//
// Each edge must have "from" and "to" fields that reference node IDs.
// Edge strength defaults to 1 when omitted.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or invalid
//   - A node has a duplicate or empty ID
//   - An edge references an unknown node ID
//   - An orientation name is not recognized
//
// Errors are wrapped with context describing which node or edge caused
// the problem. Use errors.Is to check for specific diagram errors.
//
// The returned diagram is independent of r and can be modified safely
// after ReadJSON returns. ReadJSON does not close r, and it does not run
// [diagram.Diagram.Validate]; callers decide when to check geometric
// preconditions.
func ReadJSON(r io.Reader) (*diagram.Diagram, error) {
	var data file
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := diagram.New()
	for _, n := range data.Nodes {
		orientation, err := parseOrientation(n.Orientation)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
		nd := diagram.Node{
			ID:           n.ID,
			Label:        n.Label,
			X:            n.X,
			Y:            n.Y,
			R:            n.R,
			Orientation:  orientation,
			Bands:        bandsFromJSON(n.Bands),
			CounterBands: bandsFromJSON(n.CounterBands),
		}
		if err := d.AddNode(nd); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		ed := diagram.Edge{From: e.From, To: e.To, Blocked: e.Blocked, Strength: 1}
		if e.Strength != nil {
			ed.Strength = *e.Strength
		}
		if err := d.AddEdge(ed); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return d, nil
}

// ImportJSON reads a JSON file at path and returns the decoded diagram.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context.
func ImportJSON(path string) (*diagram.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func parseOrientation(s string) (diagram.Orientation, error) {
	switch s {
	case "", "vertical":
		return diagram.OrientationVertical, nil
	case "horizontal":
		return diagram.OrientationHorizontal, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

func bandsFromJSON(in []band) []diagram.Band {
	if len(in) == 0 {
		return nil
	}
	out := make([]diagram.Band, len(in))
	for i, b := range in {
		out[i] = diagram.Band{Proportion: b.Proportion, Fill: b.Fill}
	}
	return out
}

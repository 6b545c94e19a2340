package disk

import (
	"encoding/json"

	"github.com/matzehuels/bandgraph/pkg/diagram"
)

type jsonOutput struct {
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Nodes  []jsonNode `json:"nodes"`
	Edges  []jsonEdge `json:"edges,omitempty"`
}

type jsonNode struct {
	ID          string     `json:"id"`
	Label       string     `json:"label,omitempty"`
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	R           float64    `json:"r"`
	Orientation string     `json:"orientation"`
	Bands       []jsonBand `json:"bands,omitempty"`
}

type jsonBand struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Fill    string  `json:"fill,omitempty"`
	Counter bool    `json:"counter,omitempty"`
}

type jsonEdge struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	X1      float64  `json:"x1"`
	Y1      float64  `json:"y1"`
	X2      float64  `json:"x2"`
	Y2      float64  `json:"y2"`
	Width   float64  `json:"width"`
	Blocked bool     `json:"blocked,omitempty"`
	Bar     *jsonBar `json:"bar,omitempty"`
}

type jsonBar struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// RenderJSON exports the computed drawing geometry (band rectangles,
// padded edge segments, cancellation bars) as a pretty-printed JSON
// document. The values are exactly those the SVG renderer emits, which
// makes this format useful for external tooling and for inspecting the
// area-partition output without parsing SVG.
func RenderJSON(d *diagram.Diagram, opts ...Option) ([]byte, error) {
	r := newRenderer(opts...)
	width, height := r.width, r.height
	if width == 0 || height == 0 {
		width, height = frameSize(d)
	}

	out := jsonOutput{Width: width, Height: height}

	for _, n := range d.Nodes() {
		jn := jsonNode{
			ID:          n.ID,
			Label:       n.Label,
			X:           n.X,
			Y:           n.Y,
			R:           n.R,
			Orientation: n.Orientation.String(),
		}
		for _, b := range bandRects(n) {
			jn.Bands = append(jn.Bands, jsonBand{
				X: b.X, Y: b.Y, Width: b.W, Height: b.H,
				Fill: b.Fill, Counter: b.Counter,
			})
		}
		out.Nodes = append(out.Nodes, jn)
	}

	for _, e := range d.Edges() {
		from, _ := d.Node(e.From)
		to, _ := d.Node(e.To)
		shape, ok := edgeShape(from, to, e, &r.theme)
		if !ok {
			continue
		}
		je := jsonEdge{
			From: shape.From, To: shape.To,
			X1: shape.Line.X1, Y1: shape.Line.Y1,
			X2: shape.Line.X2, Y2: shape.Line.Y2,
			Width:   shape.Width,
			Blocked: shape.Blocked,
		}
		if shape.Bar != nil {
			je.Bar = &jsonBar{X1: shape.Bar.X1, Y1: shape.Bar.Y1, X2: shape.Bar.X2, Y2: shape.Bar.Y2}
		}
		out.Edges = append(out.Edges, je)
	}

	return json.MarshalIndent(out, "", "  ")
}
